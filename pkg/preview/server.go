// Package preview serves generated confetti stylesheets over HTTP so that a
// browser can act as the rendering layer.
package preview

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/gonewx/confetti/pkg/confetti"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/registry"
	"github.com/gonewx/confetti/pkg/render"
	"github.com/gonewx/confetti/pkg/utils"
)

// DefaultMaxInstances 默认最多保留的实例数
const DefaultMaxInstances = 16

// Server 预览服务
// 每次请求首页都会创建一个新实例，样式表由注册表提供。
// 超过 maxInstances 时最早创建的实例被 Dispose。
type Server struct {
	preset       config.Preset
	registry     *registry.StyleRegistry
	rng          utils.RandomSource
	logger       hclog.Logger
	maxInstances int

	mu        sync.Mutex
	instances map[string]*confetti.Instance // style key -> instance
	order     []string                      // 创建顺序，最早的在前
}

// ServerOption 预览服务选项
type ServerOption func(*Server)

// WithMaxInstances 设置最多保留的实例数，n < 1 时按 1 处理
func WithMaxInstances(n int) ServerOption {
	return func(s *Server) {
		if n < 1 {
			n = 1
		}
		s.maxInstances = n
	}
}

// NewServer 创建预览服务；rng 为 nil 时使用全局随机源
func NewServer(preset config.Preset, reg *registry.StyleRegistry, rng utils.RandomSource, logger hclog.Logger, opts ...ServerOption) *Server {
	if rng == nil {
		rng = utils.DefaultRandom()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Server{
		preset:       preset,
		registry:     reg,
		rng:          rng,
		logger:       logger,
		maxInstances: DefaultMaxInstances,
		instances:    make(map[string]*confetti.Instance),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tracked 返回当前保留的实例数
func (s *Server) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instances)
}

// Routes 返回路由
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", s.handlePage)
	r.Get("/styles", s.handleList)
	r.Get("/styles/{file}", s.handleStylesheet)
	r.Delete("/styles/{file}", s.handleDispose)
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	particles, err := s.preset.Particles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	inst := confetti.NewInstance(
		confetti.WithRegistry(s.registry),
		confetti.WithRandom(s.rng),
		confetti.WithLogger(s.logger),
	)

	s.mu.Lock()
	err = inst.OnConfigChanged(particles, s.preset.EffectConfig())
	if err == nil {
		s.track(inst)
	}
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	page, err := render.Page(inst, len(particles), "/styles/"+inst.StyleID()+".css")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"styles": s.registry.Keys()})
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	key := styleKey(r)
	css, ok := s.registry.Get(key)
	if !ok {
		http.Error(w, "stylesheet not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(css))
}

// handleDispose 幂等：未知或已删除的键同样返回 204
func (s *Server) handleDispose(w http.ResponseWriter, r *http.Request) {
	key := styleKey(r)

	s.mu.Lock()
	s.untrack(key)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// Close 删除所有由本服务创建的样式表
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, inst := range s.instances {
		inst.Dispose()
		delete(s.instances, key)
	}
	s.order = nil
}

// track 记录新实例，超出上限时淘汰最早的实例；调用方持有 s.mu
func (s *Server) track(inst *confetti.Instance) {
	key := inst.StyleID()
	s.instances[key] = inst
	s.order = append(s.order, key)

	for len(s.order) > s.maxInstances {
		oldest := s.order[0]
		s.order = s.order[1:]
		if old, ok := s.instances[oldest]; ok {
			old.Dispose()
			delete(s.instances, oldest)
			s.logger.Debug("evicted instance", "key", oldest)
		}
	}
}

// untrack 删除并释放 key 对应的实例；调用方持有 s.mu
func (s *Server) untrack(key string) {
	inst, ok := s.instances[key]
	if !ok {
		return
	}
	inst.Dispose()
	delete(s.instances, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func styleKey(r *http.Request) string {
	return strings.TrimSuffix(chi.URLParam(r, "file"), ".css")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
