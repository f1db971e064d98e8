package microservice

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"master_ms/pkg/apperr"
)

const TransportTCP = "tcp"

// TCPServer NestJS 兼容的 JSON socket 服务端
// 每个连接一个读协程，请求并发处理，同一连接上的写串行
type TCPServer struct {
	addr       string
	dispatcher Dispatcher
	logger     *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
	wg       sync.WaitGroup
}

func NewTCPServer(addr string, dispatcher Dispatcher, logger *zap.Logger) *TCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TCPServer{
		addr:       addr,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("transport", TransportTCP)),
		conns:      make(map[net.Conn]struct{}),
	}
}

// Listen 绑定端口，Serve 之前调用
func (s *TCPServer) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return nil
}

// Addr 实际监听地址（端口为 0 时用于获取分配的端口）
func (s *TCPServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve 接受连接直到 ctx 结束或 Close
func (s *TCPServer) Serve(ctx context.Context) error {
	if s.Addr() == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.isClosed() {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return err
		}

		if !s.track(conn) {
			_ = conn.Close()
			return nil
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.ServeConn(ctx, conn)
		}()
	}
}

// ServeConn 处理单个连接，连接关闭或读出错时返回
func (s *TCPServer) ServeConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	var (
		reader   = bufio.NewReader(conn)
		writeMu  sync.Mutex
		inflight sync.WaitGroup
	)
	defer inflight.Wait()

	for {
		frame, err := ReadFrame(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.logger.Warn("read frame failed", zap.String("remote", remoteAddr(conn)), zap.Error(err))
			}
			return
		}

		// 非法 JSON 直接断开连接，调用方立即感知
		var req Request
		if err := json.Unmarshal(frame, &req); err != nil {
			s.logger.Warn("invalid request frame, closing connection", zap.String("remote", remoteAddr(conn)), zap.Error(err))
			return
		}

		inflight.Add(1)
		go func() {
			defer inflight.Done()
			reply := s.handle(ctx, &req)
			if reply == nil {
				return
			}

			writeMu.Lock()
			defer writeMu.Unlock()
			if err := WriteFrame(conn, reply); err != nil {
				s.logger.Warn("write reply failed", zap.String("id", reply.ID), zap.Error(err))
			}
		}()
	}
}

// handle 分发请求，事件消息返回 nil
func (s *TCPServer) handle(ctx context.Context, req *Request) *Reply {
	pattern, err := NormalizePattern(req.Pattern)
	if err != nil {
		if req.ID == "" {
			return nil
		}
		return &Reply{ID: req.ID, Err: apperr.BadRequest("Invalid message pattern."), IsDisposed: true}
	}

	result, appErr := s.dispatcher.Dispatch(ctx, TransportTCP, pattern, req.Data)
	if req.ID == "" {
		return nil
	}
	if appErr != nil {
		return &Reply{ID: req.ID, Err: appErr, IsDisposed: true}
	}
	return &Reply{ID: req.ID, Response: result, IsDisposed: true}
}

// Close 停止监听并断开所有连接，等待处理中的请求结束
func (s *TCPServer) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	for c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

func (s *TCPServer) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *TCPServer) track(c net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[c] = struct{}{}
	return true
}

func (s *TCPServer) untrack(c net.Conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
}

func remoteAddr(c net.Conn) string {
	if a := c.RemoteAddr(); a != nil {
		return a.String()
	}
	return ""
}
