package utils

// Redis key 前缀与 TTL
const (
	LOGIN_USER_KEY = "cms:login:token:"
	LOGIN_USER_TTL = 7200 // 秒

	IMAGE_UPLOAD_DIR = "uploads"
)
