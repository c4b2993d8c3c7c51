/**
 * Copyright (c) 2023, The Moirai Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command moirai-demo walks through the future package: it polls a couple of
// leaf futures directly, then drives a small combinator chain fed from a
// queue, printing every observation as a JSON line.
package main

import (
	"fmt"
	"os"

	"github.com/botobag/moirai/concurrent"
	"github.com/botobag/moirai/future"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// observation is what one poll attempt looked like from the outside.
type observation struct {
	Step    string      `json:"step"`
	Pending bool        `json:"pending,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func emit(obs observation) {
	line, err := json.Marshal(obs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "moirai-demo:", err)
		os.Exit(1)
	}
	fmt.Println(string(line))
}

func observe(step string, poll future.Poll[int, error]) {
	obs := observation{Step: step}
	switch {
	case !poll.IsReady():
		obs.Pending = true
	case poll.Result().IsOk():
		obs.Value = poll.Result().Value()
	default:
		obs.Error = poll.Result().Err().Error()
	}
	emit(obs)
}

func main() {
	// A resolved future is ready on its very first poll.
	observe("resolved", future.Ok[int, error](1).IntoFuture().Poll())

	// An empty future never is.
	observe("empty", future.Empty[int, error]().Poll())

	// Feed a queue, then drive a chain built over a receive adapter:
	// double the received value, then join it with a second receive.
	queue := concurrent.NewQueue[int]()
	for _, v := range []int{20, 22} {
		if err := queue.Push(v); err != nil {
			fmt.Fprintln(os.Stderr, "moirai-demo:", err)
			os.Exit(1)
		}
	}
	queue.Close()

	sum := future.Join[int, int, error](
		future.Map(future.Recv[int](queue), func(v int) int { return 2 * v }),
		future.Recv[int](queue),
	)
	result := future.BlockOn(future.Map(sum, func(p future.Pair[int, int]) int {
		return p.First + p.Second
	}))
	obs := observation{Step: "queue-chain"}
	if result.IsOk() {
		obs.Value = result.Value()
	} else {
		obs.Error = result.Err().Error()
	}
	emit(obs)

	// The queue is closed and drained now, so one more receive reports the
	// producer as gone.
	observe("drained", future.Recv[int](queue).Poll())
}
