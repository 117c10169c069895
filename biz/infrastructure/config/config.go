package config

import (
	_ "embed"
	"edu-manage/biz/infrastructure/util/log"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache  cache.CacheConf
	Redis  *redis.RedisConf
	Stripe Stripe
	S3     S3
	Cors   Cors
}

type Stripe struct {
	SecretKey string
	Currency  string `json:",default=usd"`
}

type S3 struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// 预签名URL有效期, 秒
	PresignExpire int64 `json:",default=600"`
}

type Cors struct {
	AllowOrigins []string
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// SetConfig 测试用
func SetConfig(c *Config) {
	config = c
}
