package fibgen_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/pkg/adapters/memory"
	"github.com/aretw0/fibgen/pkg/domain"
)

func ExampleGenerate() {
	fmt.Println(fibgen.Generate(7))
	fmt.Println(fibgen.Generate(-5))
	// Output:
	// [0, 1, 1, 2, 3, 5, 8]
	// []
}

// ExampleNew_journal demonstrates a Service that records every request in memory.
func ExampleNew_journal() {
	store := memory.NewStore()
	svc := fibgen.New(
		fibgen.WithStore(store),
		fibgen.WithMaxTerms(100),
	)

	ctx := context.Background()
	res, err := svc.Sequence(ctx, 10, domain.SourceHTTP)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Sequence)

	history, err := svc.History(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(history), history[0].Terms, history[0].Source)

	_, err = svc.Sequence(ctx, 101, domain.SourceHTTP)
	fmt.Println(err)
	// Output:
	// [0, 1, 1, 2, 3, 5, 8, 13, 21, 34]
	// 1 10 http
	// too many terms requested: 101 exceeds limit of 100
}
