package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxSnowflakeNode = 1023

var _ UIDGenerator = (*snowflakeGenerator)(nil)

// snowflakeGenerator hands out time-ordered decimal ids. snowflake.Node
// serializes Generate internally.
type snowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (UIDGenerator, error) {
	if nodeID < 0 || nodeID > maxSnowflakeNode {
		return nil, fmt.Errorf("uid: snowflake node id %d outside 0..%d", nodeID, maxSnowflakeNode)
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("uid: %w", err)
	}
	return g.node.Generate().String(), nil
}
