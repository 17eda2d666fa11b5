package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Диапазон шестизначных кодов подтверждения выдачи
const (
	minCode = 100000
	maxCode = 999999
)

// Generator интерфейс генератора кодов подтверждения
// Вынесен в интерфейс, чтобы политику кодов (ротация, срок жизни)
// можно было заменить, не трогая вызывающий код
type Generator interface {
	Generate() (string, error)
}

// CryptoGenerator генератор на crypto/rand, равномерный в [100000, 999999]
type CryptoGenerator struct{}

// NewCryptoGenerator создает генератор кодов на crypto/rand
func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

// Generate возвращает шестизначный код
func (g *CryptoGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+minCode), nil
}
