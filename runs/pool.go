package runs

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/tome-editor/textcore/classify"
)

// Scanners for one-shot splitting are short-lived objects. To avoid multiple
// allocation of small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scanner{}, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// borrowScanner returns a pooled scanner for mode. Scanners are handed out
// uninitialized.
func borrowScanner(mode classify.Mode) *Scanner {
	o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow scanner from pool: %v", err)
		return NewScanner(mode)
	}
	s := o.(*Scanner)
	s.mode = mode
	return s
}

// releaseIntoPool clears the scanner and puts it back into the pool.
// Scanners not created by the pool are rejected by it.
func (s *Scanner) releaseIntoPool() error {
	s.input = nil
	s.pos = 0
	s.run = Run{}
	s.err = nil
	s.initialized = false
	err := globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, s)
	if err != nil {
		tracer().Errorf("cannot return scanner to pool: %v", err)
	}
	return err
}
