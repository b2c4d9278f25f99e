// Package logging 日志初始化
//
// 命令行工具与预览服务共用一个名为 "confetti" 的根日志，
// 每个实例通过 ForInstance 派生带实例 ID 的子日志。
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel 日志级别环境变量
	EnvLogLevel = "CONFETTI_LOG_LEVEL"
	// EnvJSONLog 设置为 "1" 时输出 JSON 日志
	EnvJSONLog = "CONFETTI_JSON_LOG"

	// RootName 根日志名称
	RootName = "confetti"
	// DefaultLevel 未配置时的日志级别
	DefaultLevel = hclog.Warn
)

// ErrUnknownLevel 无法识别的日志级别
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel 解析日志级别，空字符串返回 DefaultLevel
//
// hclog.LevelFromString 对未知字符串静默返回 NoLevel，这里改为报错
func ParseLevel(level string) (hclog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return DefaultLevel, nil
	}
	parsed := hclog.LevelFromString(level)
	if parsed == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("%w %q (want trace, debug, info, warn, error or off)", ErrUnknownLevel, level)
	}
	return parsed, nil
}

// NewLogger 创建根日志
// level 为空时读取 CONFETTI_LOG_LEVEL；output 为 nil 时写到 stderr
func NewLogger(level string, output io.Writer) (hclog.Logger, error) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       RootName,
		Level:      lvl,
		JSONFormat: os.Getenv(EnvJSONLog) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}), nil
}

// ForInstance 派生单个实例的子日志，每条记录带 instance 字段
func ForInstance(parent hclog.Logger, id string) hclog.Logger {
	if parent == nil {
		parent = hclog.NewNullLogger()
	}
	return parent.Named("instance").With("instance", id)
}
