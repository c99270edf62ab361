// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf
	CacheConf cache.CacheConf

	KafkaConf KafkaConf `json:",optional"`

	AsynqConf       AsynqRedisConf  `json:",optional"`
	AsynqServerConf AsynqServerConf `json:",optional"`

	LogConf logx.LogConf

	SessionTimeoutMinutes int   `json:",optional"`
	SnowflakeNode         int64 `json:",optional"`

	Dialogue DialogueConf `json:",optional"`
	Engine   EngineConf   `json:",optional"`
}

type KafkaConf struct {
	Broker    []string `json:",optional"`
	TurnTopic string   `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",default=4"`
	Queues      map[string]int `json:",optional"`
}

// DialogueConf tunes the state machine thresholds. Zero values fall back to
// the built-in defaults.
type DialogueConf struct {
	SmallTalkThreshold  float64 `json:",optional"`
	AskFeelingThreshold float64 `json:",optional"`
}

// EngineConf overrides the built-in lexicons and tuning. Empty sections keep
// the shipped defaults; a provided section replaces its default wholesale.
type EngineConf struct {
	EmotionNorm float64 `json:",optional"`
	IntentNorm  float64 `json:",optional"`
	Threshold   float64 `json:",optional"`

	EmotionCategories []CategoryConf `json:",optional"`
	IntentCategories  []CategoryConf `json:",optional"`
	EmotionOverrides  []OverrideConf `json:",optional"`
	IntentOverrides   []OverrideConf `json:",optional"`
}

type CategoryConf struct {
	Name     string
	Keywords []string
}

type OverrideConf struct {
	Exact      string  `json:",optional"`
	Contains   string  `json:",optional"`
	Category   string  `json:",optional"`
	Confidence float64 `json:",optional"`
}
