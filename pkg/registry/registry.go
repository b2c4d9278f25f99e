// Package registry 进程级样式表注册表
//
// 注册表是唯一共享的可变资源：每个实例使用自己的键，
// 写入和删除都以整个样式表为单位完成。
package registry

import (
	"sort"
	"sync"
)

// StyleRegistry 按键保存已安装的样式表文本
type StyleRegistry struct {
	mu     sync.RWMutex
	sheets map[string]string
}

// New 创建一个空的注册表
func New() *StyleRegistry {
	return &StyleRegistry{
		sheets: make(map[string]string),
	}
}

var defaultRegistry = New()

// Default 返回进程级注册表
func Default() *StyleRegistry {
	return defaultRegistry
}

// Install 安装样式表；同一个键已存在时整体替换
func (r *StyleRegistry) Install(key, css string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[key] = css
}

// Remove 删除样式表；键不存在时什么也不做
func (r *StyleRegistry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sheets, key)
}

// Get 读取样式表文本
func (r *StyleRegistry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	css, ok := r.sheets[key]
	return css, ok
}

// Has 检查键是否存在
func (r *StyleRegistry) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys 返回所有键（已排序）
func (r *StyleRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.sheets))
	for k := range r.sheets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len 返回已安装的样式表数量
func (r *StyleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sheets)
}
