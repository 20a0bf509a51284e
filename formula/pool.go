package formula

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/propnl/token"
)

// Parsers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type parserPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalParserPool *parserPool

func init() {
	globalParserPool = &parserPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &parser{}, nil
		})
	globalParserPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalParserPool.opool = pool.NewObjectPool(globalParserPool.ctx, factory, config)
}

// borrowParser returns a parser positioned at the start of tokens.
func borrowParser(tokens []token.Token) *parser {
	o, err := globalParserPool.opool.BorrowObject(globalParserPool.ctx)
	if err != nil {
		T().Errorf("parser pool: %v", err)
		o = &parser{}
	}
	p := o.(*parser)
	p.tokens = tokens
	return p
}

// Clears the parser and puts it back into the pool.
func (p *parser) releaseIntoPool() {
	p.tokens = nil
	p.pos = 0
	p.depth = 0
	_ = globalParserPool.opool.ReturnObject(globalParserPool.ctx, p)
}
