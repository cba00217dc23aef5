package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageMinIO = "minio"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Storage struct {
	Driver    string
	UploadDir string
	URLPrefix string
}

type Images struct {
	MaxWidthMain    int
	MaxWidthGallery int
	Quality         int
}

type Session struct {
	EncryptionKey string
	TTL           time.Duration
	CookieName    string
}

type Purge struct {
	Interval time.Duration
	After    time.Duration
}

// PublicClient holds client IDs the invitation page needs for map and share widgets.
type PublicClient struct {
	KakaoJSKey       string `json:"kakaoJsKey"`
	NaverMapClientID string `json:"naverMapClientId"`
}

type Config struct {
	ServerPort        int
	ShutdownTimeout   time.Duration
	DB                DB
	MinIO             MinIO
	Storage           Storage
	Images            Images
	Session           Session
	Purge             Purge
	PublicClient      PublicClient
	MaxUploadSize     int64
	AdminUsername     string
	AdminPassword     string
	CORSAllowedOrigin string
	LogLevel          string
	LogDev            bool
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	return parseDuration(os.Getenv(key), fallback)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "wedding"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadStorage() Storage {
	driver := getEnv("STORAGE_DRIVER", StorageLocal)
	if driver != StorageMinIO {
		driver = StorageLocal
	}

	return Storage{
		Driver:    driver,
		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
		URLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DB:              LoadDB(),
		MinIO:           LoadMinIO(),
		Storage:         LoadStorage(),
		Images: Images{
			MaxWidthMain:    getEnvAsInt("IMAGE_MAX_WIDTH_MAIN", 1920),
			MaxWidthGallery: getEnvAsInt("IMAGE_MAX_WIDTH_GALLERY", 1600),
			Quality:         getEnvAsInt("IMAGE_QUALITY", 85),
		},
		Session: Session{
			EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
			TTL:           getEnvDuration("SESSION_TTL", 24*time.Hour),
			CookieName:    getEnv("SESSION_COOKIE", "admin_session"),
		},
		Purge: Purge{
			Interval: getEnvDuration("PURGE_INTERVAL", time.Hour),
			After:    getEnvDuration("PURGE_AFTER", 24*time.Hour),
		},
		PublicClient: PublicClient{
			KakaoJSKey:       getEnv("KAKAO_JS_KEY", ""),
			NaverMapClientID: getEnv("NAVER_MAP_CLIENT_ID", ""),
		},
		MaxUploadSize:     parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogDev:            getEnvBool("LOG_DEV", false),
	}
}
