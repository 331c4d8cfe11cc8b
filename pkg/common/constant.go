package common

import "time"

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyCCTVDBType string = "CCTV_DB_TYPE"
	EnvKeyCCTVDbPath string = "CCTV_DB_PATH"
	EnvKeyCCTVDbDSN  string = "CCTV_DB_DSN"

	EnvKeyCCTVHttpHostPort string = "CCTV_HTTP_HOST_PORT"
	EnvKeyCCTVGrpcHostPort string = "CCTV_GRPC_HOST_PORT"

	EnvKeyCCTVDefaultRate  string = "CCTV_DEFAULT_RATE"
	EnvKeyCCTVDefaultBurst string = "CCTV_DEFAULT_BURST"

	EnvKeyCCTVJwtSecret string = "CCTV_JWT_SECRET"
	EnvKeyCCTVLogDir    string = "CCTV_LOG_DIR"

	LoggerNameCCTVCore      string = "cctv_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNamePinger        string = "pinger"

	LoggerFieldCCTVCategory      string = "category"
	LoggerCategoryCCTVCamera     string = "camera"
	LoggerCategoryCCTVZone       string = "zone"
	LoggerCategoryCCTVBulkCreate string = "bulk_create"
	LoggerCategoryCCTVBulkStatus string = "bulk_status"
	LoggerCategoryCCTVHistory    string = "history"
	LoggerCategoryCCTVUser       string = "user"

	HeaderDeviceToken        string = "x-token"
	HeaderDeviceID           string = "x-id"
	HeaderDeviceUniqueNumber string = "x-unique-number"
)

const DefaultProbeTimeout = time.Second
