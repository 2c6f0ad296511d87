package bankcore

type Config struct {
	Database struct {
		ConnStr    string            `yaml:"conn_str"`
		SeedOwners map[string]string `yaml:"seed_owners"`
	} `yaml:"database"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Snowflake struct {
		Node int64 `yaml:"node"`
	} `yaml:"snowflake"`
	Limits struct {
		MaxInflight      int64 `yaml:"max_inflight"`
		AcquireTimeoutMS int   `yaml:"acquire_timeout_ms"`
	} `yaml:"limits"`
}
