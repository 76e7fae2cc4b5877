package reviews

import (
	"sync"
	"time"
)

// DefaultRevealThreshold длительность удержания, после которой
// отпускание открывает кнопку удаления
const DefaultRevealThreshold = 500 * time.Millisecond

// PressState состояние жеста долгого нажатия на отзыв
type PressState string

const (
	// StateIdle кнопка удаления скрыта, нажатие не идёт
	StateIdle PressState = "Idle"
	// StatePressing нажатие идёт, порог ещё не оценивался
	StatePressing PressState = "Pressing"
	// StateRevealed кнопка удаления открыта для одного отзыва
	StateRevealed PressState = "Revealed"
)

// RevealGate решает, открывать ли кнопку удаления отзыва по долгому
// нажатию. Таймеров нет: переход Pressing → Revealed происходит лениво,
// при любом чтении состояния после истечения порога, поэтому кнопка
// открывается ещё во время удержания. Нажатие на отзыв, который текущая
// сессия удалить не может, жест не вооружает вовсе
type RevealGate struct {
	threshold    time.Duration
	timeProvider TimeProvider

	mu        sync.Mutex
	state     PressState
	reviewID  int64
	pressedAt time.Time
}

// NewRevealGate создает gate с порогом по умолчанию
func NewRevealGate() *RevealGate {
	return NewRevealGateWithThreshold(DefaultRevealThreshold)
}

// NewRevealGateWithThreshold создает gate с заданным порогом удержания
func NewRevealGateWithThreshold(threshold time.Duration) *RevealGate {
	return &RevealGate{
		threshold:    threshold,
		timeProvider: &RealTimeProvider{},
		state:        StateIdle,
	}
}

// PressStart начинает отсчёт удержания по отзыву
// Если сессия не вправе удалить отзыв, жест игнорируется и gate
// возвращается в Idle (в том числе сбрасывая открытую ранее кнопку)
func (g *RevealGate) PressStart(reviewID int64, canDelete bool, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !canDelete {
		g.reset()
		return
	}

	g.state = StatePressing
	g.reviewID = reviewID
	g.pressedAt = now
}

// PressEnd завершает удержание
// При удержании не короче порога кнопка удаления остаётся открытой для
// нажатого отзыва, иначе жест считается обычным кликом и gate
// возвращается в Idle
func (g *RevealGate) PressEnd(now time.Time) PressState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePressing {
		return g.state
	}

	g.promote(now)
	if g.state == StatePressing {
		g.reset()
	}
	return g.state
}

// OutsideClick скрывает открытую кнопку при клике вне отзыва
func (g *RevealGate) OutsideClick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
}

// DeleteCompleted скрывает кнопку после завершённого удаления
func (g *RevealGate) DeleteCompleted() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
}

// State возвращает текущее состояние жеста
// Удержание, пережившее порог, видно как Revealed ещё до отпускания
func (g *RevealGate) State() PressState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.promote(g.timeProvider.Now())
	return g.state
}

// RevealedReview возвращает ID отзыва с открытой кнопкой удаления
func (g *RevealGate) RevealedReview() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.promote(g.timeProvider.Now())
	if g.state != StateRevealed {
		return 0, false
	}
	return g.reviewID, true
}

// promote выполняет переход Pressing → Revealed, если порог истёк
// Вызывается под мьютексом
func (g *RevealGate) promote(now time.Time) {
	if g.state == StatePressing && now.Sub(g.pressedAt) >= g.threshold {
		g.state = StateRevealed
	}
}

func (g *RevealGate) reset() {
	g.state = StateIdle
	g.reviewID = 0
	g.pressedAt = time.Time{}
}
