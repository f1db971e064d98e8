package microservice

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"master_ms/pkg/apperr"
)

// 帧格式：<JSON 字节长度>#<JSON>

// MaxFrameSize 单帧上限（Excel 导入以 base64 放在 data 中）
const MaxFrameSize = 32 << 20

var (
	ErrFrameTooLarge = errors.New("frame too large")
	ErrCorruptFrame  = errors.New("corrupted length value")
)

// Request TCP 入站消息，id 为空时视为事件，不回复
type Request struct {
	Pattern json.RawMessage `json:"pattern"`
	Data    json.RawMessage `json:"data"`
	ID      string          `json:"id,omitempty"`
}

// Reply TCP 回复
type Reply struct {
	ID         string        `json:"id"`
	Response   interface{}   `json:"response,omitempty"`
	Err        *apperr.Error `json:"err,omitempty"`
	IsDisposed bool          `json:"isDisposed"`
}

// maxHeaderLen 长度前缀最多位数，超出即视为损坏
const maxHeaderLen = 20

// ReadFrame 读取一帧
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	var head []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(head) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if b == '#' {
			break
		}
		if len(head) == maxHeaderLen {
			return nil, fmt.Errorf("%w: %q...", ErrCorruptFrame, head[:8])
		}
		head = append(head, b)
	}

	size, err := strconv.Atoi(string(head))
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCorruptFrame, head)
	}
	if size > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteFrame 序列化 v 并写入一帧
func WriteFrame(w io.Writer, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	frame := make([]byte, 0, len(body)+12)
	frame = strconv.AppendInt(frame, int64(len(body)), 10)
	frame = append(frame, '#')
	frame = append(frame, body...)

	_, err = w.Write(frame)
	return err
}
