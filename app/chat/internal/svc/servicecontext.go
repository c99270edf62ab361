package svc

import (
	"time"

	"EmotionAI/app/chat/internal/config"
	"EmotionAI/app/chat/internal/dialogue"
	"EmotionAI/app/chat/internal/engine"
	"EmotionAI/app/chat/internal/engine/lexicon"
	"EmotionAI/app/chat/internal/recommend"
	"EmotionAI/app/chat/internal/session"
	"EmotionAI/app/common/consts/biz"
	"EmotionAI/app/common/snowflake"
	conversationdal "EmotionAI/app/dal/conversation"
	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	DB    sqlx.SqlConn
	Redis *redis.Redis

	Fragrances      fragrancedal.FragrancesModel
	Users           userdal.UsersModel
	UserPreferences userdal.UserPreferencesModel
	Conversations   conversationdal.ConversationsModel
	SessionRows     conversationdal.ConversationSessionsModel

	Engine      *engine.Engine
	Controller  *dialogue.Controller
	SessionMgr  *session.Manager
	Recommender *recommend.Recommender

	KafkaWriter *kafka.Writer
	AsynqClient *asynq.Client

	SessionTTL time.Duration
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	db := sqlx.NewMysql(c.MysqlConf.DataSource)
	rds := redis.MustNewRedis(c.RedisConf)

	fragrances := fragrancedal.NewFragrancesModel(db, c.CacheConf)
	users := userdal.NewUsersModel(db, c.CacheConf)
	prefs := userdal.NewUserPreferencesModel(db, c.CacheConf)
	conversations := conversationdal.NewConversationsModel(db, c.CacheConf)
	sessionRows := conversationdal.NewConversationSessionsModel(db, c.CacheConf)

	ttl := time.Duration(c.SessionTimeoutMinutes) * time.Minute
	if ttl <= 0 {
		ttl = biz.SessionExpire
	}

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	eng := engine.MustNew(buildEngineConfig(c.Engine))
	controller := dialogue.MustNewController(eng.Emotion, dialogue.Config{
		SmallTalkThreshold:  c.Dialogue.SmallTalkThreshold,
		AskFeelingThreshold: c.Dialogue.AskFeelingThreshold,
	})

	store := session.NewRedisStore(rds, ttl)
	sessionMgr := session.NewManager(store, controller, snowflake.NextSessionID)

	recommender := recommend.NewRecommender(fragrances, prefs)

	var kafkaWriter *kafka.Writer
	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.TurnTopic != "" {
		kafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.TurnTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	}

	asynqAddr := c.AsynqConf.Addr
	if asynqAddr == "" {
		asynqAddr = c.RedisConf.Host
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: asynqAddr})

	return &ServiceContext{
		Config:          c,
		DB:              db,
		Redis:           rds,
		Fragrances:      fragrances,
		Users:           users,
		UserPreferences: prefs,
		Conversations:   conversations,
		SessionRows:     sessionRows,
		Engine:          eng,
		Controller:      controller,
		SessionMgr:      sessionMgr,
		Recommender:     recommender,
		KafkaWriter:     kafkaWriter,
		AsynqClient:     asynqClient,
		SessionTTL:      ttl,
	}
}

// buildEngineConfig layers YAML overrides on the shipped defaults. Validity
// is checked by engine.MustNew, so a broken override fails at startup.
func buildEngineConfig(c config.EngineConf) engine.Config {
	cfg := engine.DefaultConfig()
	if c.EmotionNorm > 0 {
		cfg.Emotion.Norm = c.EmotionNorm
	}
	if c.IntentNorm > 0 {
		cfg.Intent.Norm = c.IntentNorm
	}
	if c.Threshold > 0 {
		cfg.Arbiter.Threshold = c.Threshold
	}
	if len(c.EmotionCategories) > 0 {
		cfg.Emotion.Categories = toCategories(c.EmotionCategories)
	}
	if len(c.IntentCategories) > 0 {
		cfg.Intent.Categories = toCategories(c.IntentCategories)
	}
	if len(c.EmotionOverrides) > 0 {
		cfg.Emotion.Overrides = toOverrides(c.EmotionOverrides)
	}
	if len(c.IntentOverrides) > 0 {
		cfg.Intent.Overrides = toOverrides(c.IntentOverrides)
	}
	return cfg
}

func toCategories(src []config.CategoryConf) []lexicon.Category {
	out := make([]lexicon.Category, 0, len(src))
	for _, c := range src {
		out = append(out, lexicon.Category{Name: c.Name, Keywords: c.Keywords})
	}
	return out
}

func toOverrides(src []config.OverrideConf) []lexicon.Override {
	out := make([]lexicon.Override, 0, len(src))
	for _, o := range src {
		out = append(out, lexicon.Override{
			Exact:      o.Exact,
			Contains:   o.Contains,
			Category:   o.Category,
			Confidence: o.Confidence,
		})
	}
	return out
}
