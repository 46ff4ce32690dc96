package hydr8_test

import (
	"fmt"

	"github.com/0xalexb/hydr8"
)

func ExampleBind() {
	hydr8.Init(hydr8.Tree{
		"db": map[string]any{"host": "localhost", "port": 5432},
	})

	type connectParams struct {
		Host string
		Port int
	}

	connect := hydr8.Bind(func(p connectParams) (string, error) {
		return fmt.Sprintf("%s:%d", p.Host, p.Port), nil
	}, hydr8.WithPath("db"))

	// The caller supplies host; port comes from the config tree.
	addr, err := connect(hydr8.Args{"host": "replica-1"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(addr)
	// Output:
	// replica-1:5432
}

func ExampleUse() {
	hydr8.Init(hydr8.Tree{
		"db": map[string]any{"host": "localhost", "port": 5432},
	})

	db := hydr8.Use("db")

	host, err := db.Get("host")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(host)
	// Output:
	// localhost
}

func ExampleOverride() {
	hydr8.Init(hydr8.Tree{
		"db": map[string]any{"host": "localhost"},
	})

	db := hydr8.Use("db")

	func() {
		restore := hydr8.Override(hydr8.Tree{
			"db": map[string]any{"host": "test-db"},
		})
		defer restore()

		host, _ := db.Get("host")
		fmt.Println(host)
	}()

	host, _ := db.Get("host")
	fmt.Println(host)
	// Output:
	// test-db
	// localhost
}
