package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestInstallReplace(t *testing.T) {
	r := New()
	r.Install("confetti-style-0", "a")
	r.Install("confetti-style-0", "b")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, 期望 1", r.Len())
	}
	if css, _ := r.Get("confetti-style-0"); css != "b" {
		t.Errorf("Get() = %q, 期望 b", css)
	}
}

// TestRemoveIdempotent 重复删除不报错，也不影响其他键
func TestRemoveIdempotent(t *testing.T) {
	r := New()
	r.Install("k1", "a")
	r.Install("k2", "b")

	r.Remove("k1")
	r.Remove("k1")
	r.Remove("missing")

	if r.Has("k1") {
		t.Error("k1 应该已被删除")
	}
	if !r.Has("k2") {
		t.Error("k2 不应该被影响")
	}
}

func TestKeysSorted(t *testing.T) {
	r := New()
	for _, k := range []string{"c", "a", "b"} {
		r.Install(k, k)
	}
	keys := r.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, 期望 %q", i, keys[i], want[i])
		}
	}
}

func TestConcurrentInstances(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("confetti-style-%d", i)
			r.Install(key, "css")
			if i%2 == 0 {
				r.Remove(key)
			}
		}(i)
	}
	wg.Wait()

	if r.Len() != 25 {
		t.Errorf("Len() = %d, 期望 25", r.Len())
	}
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() 应该返回同一个注册表")
	}
}
