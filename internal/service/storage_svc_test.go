package service

import (
	"context"
	"encoding/base64"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_ms/internal/config"
)

func newLocalStorage(t *testing.T) *StorageService {
	svc, err := NewStorageService(config.StorageConfig{
		Provider: "local",
		BasePath: t.TempDir(),
		Endpoint: "http://cdn.test/uploads",
	})
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}
	return svc
}

func TestNewStorageService_InvalidProvider(t *testing.T) {
	_, err := NewStorageService(config.StorageConfig{Provider: "invalid"})
	if err == nil {
		t.Error("期望返回错误，但未返回")
	}
}

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	svc := newLocalStorage(t)
	ctx := context.Background()

	url, err := svc.Upload(ctx, []byte("Hello, World!"), "test.txt", "text/plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://cdn.test/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".txt"), url)

	data, err := svc.Download(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", string(data))

	require.NoError(t, svc.Delete(ctx, url))
	_, err = svc.Download(ctx, url)
	assert.True(t, os.IsNotExist(err))

	// 删除不存在的文件不报错
	assert.NoError(t, svc.Delete(ctx, url))
}

func TestLocalStorage_RejectsEscape(t *testing.T) {
	svc := newLocalStorage(t)
	_, err := svc.Download(context.Background(), "../../etc/passwd")
	// 被限制在根目录内，只会得到不存在
	assert.Error(t, err)
}

func TestSaveDataURI(t *testing.T) {
	svc := newLocalStorage(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	url, err := svc.SaveDataURI(context.Background(), uri, "brand")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	data, err := svc.Download(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	_, _, err := DecodeDataURI("https://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, _, err = DecodeDataURI("data:image/png;base64,!!!")
	assert.ErrorIs(t, err, ErrInvalidDataURI)
	assert.False(t, IsDataURI("data:text/plain,hello"))
}
