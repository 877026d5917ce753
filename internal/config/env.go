// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "AAU_PORT"
	EnvLogLevel        = "AAU_LOG_LEVEL"
	EnvShutdownTimeout = "AAU_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "AAU_DATA_DIR"

	// Sessions
	EnvSessionTTL             = "AAU_SESSION_TTL"
	EnvSessionCleanupInterval = "AAU_SESSION_CLEANUP_INTERVAL"

	// Dialogue
	EnvConfidenceThreshold   = "AAU_CONFIDENCE_THRESHOLD"
	EnvClarifyLowConfidence  = "AAU_CLARIFY_LOW_CONFIDENCE"
	EnvFollowUpMaxWords      = "AAU_FOLLOWUP_MAX_WORDS"
	EnvMaxFollowUpQuestions  = "AAU_MAX_FOLLOWUP_QUESTIONS"
	EnvTemplateSeed          = "AAU_TEMPLATE_SEED"
	EnvConversationLogEnable = "AAU_CONVERSATION_LOG_ENABLED"

	// News retrieval
	EnvNewsLimit = "AAU_NEWS_LIMIT"

	// Rate Limits
	EnvUserRateBurst  = "AAU_USER_RATE_BURST"
	EnvUserRateRefill = "AAU_USER_RATE_REFILL"
	EnvLLMRateBurst   = "AAU_LLM_RATE_BURST"
	EnvLLMRateRefill  = "AAU_LLM_RATE_REFILL"

	// LLM entity recognition
	EnvGeminiAPIKey = "AAU_GEMINI_API_KEY"
	EnvGroqAPIKey   = "AAU_GROQ_API_KEY"
	EnvGeminiModel  = "AAU_GEMINI_MODEL"
	EnvGroqModel    = "AAU_GROQ_MODEL"

	// R2 Backup Feature
	EnvR2Enabled        = "AAU_R2_ENABLED"
	EnvR2Endpoint       = "AAU_R2_ENDPOINT"
	EnvR2AccessKeyID    = "AAU_R2_ACCESS_KEY_ID"
	EnvR2SecretKey      = "AAU_R2_SECRET_ACCESS_KEY"
	EnvR2BucketName     = "AAU_R2_BUCKET_NAME"
	EnvR2BackupKey      = "AAU_R2_BACKUP_KEY"
	EnvR2BackupInterval = "AAU_R2_BACKUP_INTERVAL"

	// Sentry Feature
	EnvSentryDSN         = "AAU_SENTRY_DSN"
	EnvSentryEnvironment = "AAU_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "AAU_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "AAU_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "AAU_BETTERSTACK_ENDPOINT"
)
