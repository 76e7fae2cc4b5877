package upload_image

// UploadImageResponse HTTP response model
type UploadImageResponse struct {
	URL string `json:"url"`
}
