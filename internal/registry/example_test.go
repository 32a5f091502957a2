package registry_test

import (
	"fmt"

	"github.com/expensewise/sms-parser/internal/registry"
)

func ExampleRegistry_Parse() {
	reg := registry.New()
	txn := reg.Parse(
		"INR 500.00 debited from A/c XX1234 on 01-01-25 to SWIGGY. Avl Bal is INR 4,500.00",
		"VM-HDFCBK-S", 1735689600000,
	)
	fmt.Println(txn.Bank, txn.Type, txn.Amount, txn.Merchant)
	// Output: HDFC Bank EXPENSE 500 Swiggy
}
