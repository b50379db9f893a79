package syncx

import (
	"sync"
	"testing"
)

func TestSpinLockMutualExclusion(t *testing.T) {
	lock := NewSpinLock()
	wg := sync.WaitGroup{}

	counter := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != 8*1000 {
		t.Fatalf("counter = %d, want %d", counter, 8*1000)
	}
}

func BenchmarkSpinLock(b *testing.B) {
	lock := NewSpinLock()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lock.Lock()
			lock.Unlock()
		}
	})
}

func BenchmarkMutex(b *testing.B) {
	lock := sync.Mutex{}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lock.Lock()
			lock.Unlock()
		}
	})
}
