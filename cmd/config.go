package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	CarrierBaseURL         string
	CarrierAPIKey          string
	EmailRelayURL          string
	EmailRelayAPIKey       string
	SMSRelayURL            string
	SMSRelayAPIKey         string
}
