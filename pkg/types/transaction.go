package types

// Transaction 待签名/已签名的账本交易
//
// Message 是钱包签名的对象（已序列化的交易消息，不透明字节）；
// Signatures 按签名者顺序排列，未签名的交易为空。
type Transaction struct {
	Message    []byte
	Signatures [][]byte
}

// IsSigned 是否至少携带一个签名
func (tx *Transaction) IsSigned() bool {
	return tx != nil && len(tx.Signatures) > 0
}
