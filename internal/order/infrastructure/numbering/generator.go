// Package numbering 订单号生成
package numbering

import (
	"fmt"
	"strings"

	"github.com/wyfcoding/ecommerce/internal/order/domain"
	"github.com/wyfcoding/pkg/idgen"
)

// randomGenerator 基于随机短 ID 的订单号生成器，
// 格式为 ORD-XXXXXXXXXX，冲突由订单号唯一索引兜底。
type randomGenerator struct{}

// NewRandomGenerator 创建订单号生成器实例
func NewRandomGenerator() domain.NumberGenerator {
	return &randomGenerator{}
}

// Next 生成下一个订单号
func (g *randomGenerator) Next() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(idgen.GenShortID(10)))
}
