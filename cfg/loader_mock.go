package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:        "portfolio-api",
			Version:     "0.0.1",
			Env:         "dev",
			Description: "Backend API for a developer portfolio",
			Website:     "https://jakekohl.dev",
			Repo:        "https://github.com/jakekohl/portfolio",
			DocsUrl:     "/docs",
		},

		// Http
		Http: Http{
			Port:         8080,
			CorsDomains:  []string{"*"},
			ReadTimeout:  15,
			WriteTimeout: 15,
			IdleTimeout:  60,
		},

		// Mysql
		Mysql: Mysql{
			Host:                  "127.0.0.1",
			Password:              "root",
			Username:              "root",
			Port:                  "3306",
			Database:              "portfolio",
			MaxIdleConnection:     10,
			MaxOpenConnection:     100,
			MaxLifeTimeConnection: 3600,
		},

		// Storage
		Storage: Storage{
			Driver: "memory",
		},

		// GithubApi
		GithubApi: GithubApi{
			AccessToken:       "",
			GraphqlUrl:        "https://api.github.com/graphql",
			RequestsPerSecond: 5,
			ThrottleDelay:     200,
		},

		// GithubStats
		GithubStats: GithubStats{
			Secret:          "test-secret",
			CooldownMinutes: 60,
		},

		// Kafka
		Kafka: Kafka{
			Enabled: false,
			Brokers: []string{"127.0.0.1:9092"},
			Producer: KafkaProducer{
				TopicStats: "portfolio.github-stats",
			},
		},

		// Log
		Log: Log{
			Driver: "console",
			Level:  "debug",
		},
	}, nil
}
