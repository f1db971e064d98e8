package microservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"master_ms/pkg/apperr"
)

const TransportKafka = "kafka"

// NestJS Kafka 传输使用的消息头
const (
	HeaderCorrelationID  = "kafka_correlationId"
	HeaderReplyTopic     = "kafka_replyTopic"
	HeaderReplyPartition = "kafka_replyPartition"
	HeaderNestErr        = "kafka_nest-err"
	HeaderNestDisposed   = "kafka_nest-is-disposed"
)

// KafkaConfig Kafka 传输配置
type KafkaConfig struct {
	Brokers      []string
	GroupID      string
	ClientID     string
	MaxBytes     int
	WriteTimeout time.Duration
}

// KafkaServer 每个 topic 一个 Reader，回复写入请求头指定的 reply topic
type KafkaServer struct {
	cfg        KafkaConfig
	dispatcher Dispatcher
	topics     []string
	logger     *zap.Logger

	writer  *kafka.Writer
	mu      sync.Mutex
	readers []*kafka.Reader
	wg      sync.WaitGroup
}

func NewKafkaServer(cfg KafkaConfig, dispatcher Dispatcher, topics []string, logger *zap.Logger) *KafkaServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = MaxFrameSize
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	return &KafkaServer{
		cfg:        cfg,
		dispatcher: dispatcher,
		topics:     topics,
		logger:     logger.With(zap.String("transport", TransportKafka)),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               replyBalancer{},
			RequiredAcks:           kafka.RequireOne,
			WriteTimeout:           cfg.WriteTimeout,
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// Serve 启动所有 topic 的消费协程，阻塞直到 ctx 结束
func (s *KafkaServer) Serve(ctx context.Context) error {
	if len(s.cfg.Brokers) == 0 {
		return errors.New("kafka: no brokers configured")
	}

	for _, topic := range s.topics {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  s.cfg.Brokers,
			GroupID:  s.cfg.GroupID,
			Topic:    topic,
			MaxBytes: s.cfg.MaxBytes,
			Dialer: &kafka.Dialer{
				ClientID: s.cfg.ClientID,
				Timeout:  10 * time.Second,
			},
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				s.logger.Error(fmt.Sprintf(msg, args...))
			}),
		})

		s.mu.Lock()
		s.readers = append(s.readers, reader)
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.consume(ctx, reader)
		}()
	}

	<-ctx.Done()
	return nil
}

func (s *KafkaServer) consume(ctx context.Context, reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			// Reader 关闭后返回 io.EOF
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			s.logger.Error("fetch message failed", zap.String("topic", reader.Config().Topic), zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		if reply, ok := s.Handle(ctx, msg); ok {
			if err := s.writer.WriteMessages(ctx, reply); err != nil {
				s.logger.Error("write reply failed",
					zap.String("topic", reply.Topic),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			s.logger.Warn("commit failed", zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

// Handle 分发一条消息并构造回复；没有 correlation id 的消息是事件，不回复
func (s *KafkaServer) Handle(ctx context.Context, msg kafka.Message) (kafka.Message, bool) {
	result, appErr := s.dispatcher.Dispatch(ctx, TransportKafka, msg.Topic, json.RawMessage(msg.Value))

	correlationID := header(msg, HeaderCorrelationID)
	if correlationID == "" {
		return kafka.Message{}, false
	}

	replyTopic := header(msg, HeaderReplyTopic)
	if replyTopic == "" {
		replyTopic = msg.Topic + ".reply"
	}
	return BuildKafkaReply(replyTopic, header(msg, HeaderReplyPartition), correlationID, result, appErr), true
}

// BuildKafkaReply 构造回复消息，错误放在 kafka_nest-err 头中
func BuildKafkaReply(topic, partition, correlationID string, result interface{}, appErr *apperr.Error) kafka.Message {
	headers := []kafka.Header{
		{Key: HeaderCorrelationID, Value: []byte(correlationID)},
		{Key: HeaderNestDisposed, Value: []byte("1")},
	}
	if partition != "" {
		headers = append(headers, kafka.Header{Key: HeaderReplyPartition, Value: []byte(partition)})
	}

	var value []byte
	if appErr != nil {
		errBody, _ := json.Marshal(appErr)
		headers = append(headers, kafka.Header{Key: HeaderNestErr, Value: errBody})
	} else if result != nil {
		value, _ = json.Marshal(result)
	}

	return kafka.Message{Topic: topic, Value: value, Headers: headers}
}

// Close 关闭所有 Reader 和 Writer
func (s *KafkaServer) Close() error {
	s.mu.Lock()
	readers := s.readers
	s.readers = nil
	s.mu.Unlock()

	var errs []error
	for _, r := range readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.wg.Wait()

	if err := s.writer.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// replyBalancer 客户端指定了 reply partition 时写入该分区，否则写第一个分区
type replyBalancer struct{}

func (replyBalancer) Balance(msg kafka.Message, partitions ...int) int {
	if p, err := strconv.Atoi(header(msg, HeaderReplyPartition)); err == nil {
		for _, candidate := range partitions {
			if candidate == p {
				return p
			}
		}
	}
	if len(partitions) == 0 {
		return 0
	}
	return partitions[0]
}
