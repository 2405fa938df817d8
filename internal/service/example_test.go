package service_test

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathcch/internal/service"
)

func Example_chaining() {
	svc := service.New(service.Options{Author: "alice"})
	ctx := context.Background()

	o, err := svc.Strip(ctx, `\\?\C:\Temp`, 20)
	if err != nil {
		panic(err)
	}

	o, err = svc.Sep(ctx, o.Output, 20)
	if err != nil {
		panic(err)
	}
	fmt.Println(o.Output, o.Status, *o.Remaining)
	// Output:
	// C:\Temp\ changed 12
}
