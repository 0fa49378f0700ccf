package cfg

type (
	App struct {
		Name        string
		Version     string
		Env         string
		Description string
		Website     string
		Repo        string
		DocsUrl     string
	}

	Http struct {
		Port         int
		CorsDomains  []string
		ReadTimeout  int
		WriteTimeout int
		IdleTimeout  int
	}

	Mysql struct {
		Host                  string
		Port                  string
		Username              string
		Password              string
		Database              string
		MaxIdleConnection     int
		MaxOpenConnection     int
		MaxLifeTimeConnection int
	}

	Storage struct {
		Driver string // "mysql" or "memory"
	}

	GithubApi struct {
		AccessToken       string
		GraphqlUrl        string
		RequestsPerSecond int
		ThrottleDelay     int
	}

	GithubStats struct {
		Secret          string
		CooldownMinutes int
	}

	KafkaProducer struct {
		TopicStats string
	}

	Kafka struct {
		Enabled  bool
		Brokers  []string
		Producer KafkaProducer
	}

	Log struct {
		Driver string // "console" or "logrus"
		Level  string
	}
)

type Config struct {
	App         App
	Http        Http
	Mysql       Mysql
	Storage     Storage
	GithubApi   GithubApi
	GithubStats GithubStats
	Kafka       Kafka
	Log         Log
}
