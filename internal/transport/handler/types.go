package handler

type ConvertRequest struct {
	RawFileURL string `json:"rawFileUrl" validate:"required"`
	UploadURL  string `json:"uploadUrl" validate:"required"`
}

type ConvertResponse struct {
	Success    bool   `json:"success"`
	StorageID  string `json:"storageId"`
	Dimensions string `json:"dimensions"`
	FileSize   int    `json:"fileSize"`
	Type       string `json:"type"`
}

type HealthResponse struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}
