package main

import (
	"fmt"

	"github.com/mgnsk/listdemo/list"
)

type task struct {
	name     string
	priority int

	byPriority list.Link[task]
	pending    list.Link[task]
}

func main() {
	// The same tasks are kept on two lists through separate links.
	byPriority := list.New(func(t *task) *list.Link[task] { return &t.byPriority })
	pending := list.New(func(t *task) *list.Link[task] { return &t.pending })

	higher := func(a, b *task) bool {
		return a.priority > b.priority
	}

	for _, t := range []*task{
		{name: "write docs", priority: 1},
		{name: "fix bug", priority: 3},
		{name: "review", priority: 2},
	} {
		byPriority.InsertOrdered(t, higher)
		pending.PushBack(t)
	}

	// Finishing a task removes it from the pending list only.
	done := pending.PopFront()

	for e := byPriority.Begin(); e != byPriority.End(); e = e.Next() {
		t := e.Entry()
		fmt.Println(t.priority, t.name, t == done)
	}

	fmt.Println("pending:", pending.Len())
}
