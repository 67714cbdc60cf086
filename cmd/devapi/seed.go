package main

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// seed fills the in-memory store with a deterministic fake catalog and two
// well-known accounts:
//
//	CUST1 / secret1 (customer)
//	VEND1 / secret1 (vendor)
func (s *server) seed(n uint64) {
	f := gofakeit.New(n)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 1; i <= 50; i++ {
		features := make([]string, 0, 5)
		for j := 0; j < 3+f.Number(0, 4); j++ {
			features = append(features, f.AdjectiveDescriptive())
		}
		s.products = append(s.products, product{
			ProductID:   fmt.Sprintf("PRD%04d", i),
			Model:       f.ProductName(),
			Brand:       f.Company(),
			Description: f.ProductDescription(),
			Price:       decimal.NewFromInt(int64(f.Number(1000, 100000))),
			Quantity:    int64(f.Number(0, 100)),
			Color:       f.Color(),
			Features:    strings.Join(features, ", "),
			Image:       fmt.Sprintf("https://img.phonekart.dev/%04d.jpg", i),
		})
	}

	s.users["CUST1"] = user{UserID: "CUST1", UserName: "Dev Customer", Role: "CUSTOMER", password: "secret1"}
	s.users["VEND1"] = user{UserID: "VEND1", UserName: "Dev Vendor", Role: "VENDOR", password: "secret1"}
}
