package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 缩略图上传限制
const (
	MimeImage        = "image/"
	MaxThumbnailSize = 5 * 1024 * 1024 // 5MB
)
