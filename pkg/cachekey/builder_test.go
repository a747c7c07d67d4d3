package cachekey

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/franela/goblin"
)

func TestBuilder(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Builder", func() {
		g.Describe("Build", func() {
			g.It("Should return the same key for the same input", func() {
				builder := NewBuilder("default")

				first, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "default")
				second, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "default")

				g.Assert(first).Equal(second)
			})

			g.It("Should use default resolver when resolver is not given", func() {
				builder := NewBuilder("default")

				implicit, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "")
				explicit, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "default")

				g.Assert(implicit.Resolver).Equal("default")
				g.Assert(implicit.Signature).Equal(explicit.Signature)
			})

			g.It("Should keep source path as runtime path when no runtime parameters are given", func() {
				builder := NewBuilder("default")

				key, _ := builder.Build("photos/a.jpg", "thumbnail", RuntimeParameters{}, "")

				g.Assert(key.RuntimePath).Equal("photos/a.jpg")
			})

			g.It("Should prefix runtime path with runtime hash when runtime parameters are given", func() {
				builder := NewBuilder("default")
				params := RuntimeParameters{"width": 100}

				key, _ := builder.Build("photos/a.jpg", "thumbnail", params, "")
				hash, _ := builder.RuntimeHash(params)

				g.Assert(key.RuntimePath).Equal("rc/" + hash + "/photos/a.jpg")
			})

			g.It("Should produce the same key for set-equal parameters built in different order", func() {
				builder := NewBuilder("default")

				first := RuntimeParameters{}
				first["width"] = 100
				first["height"] = 50
				first["crop"] = map[string]interface{}{"x": 1, "y": 2}

				second := RuntimeParameters{}
				second["crop"] = map[string]interface{}{"y": 2, "x": 1}
				second["height"] = 50
				second["width"] = 100

				firstKey, _ := builder.Build("photos/a.jpg", "thumbnail", first, "")
				secondKey, _ := builder.Build("photos/a.jpg", "thumbnail", second, "")

				g.Assert(firstKey).Equal(secondKey)
			})

			g.It("Should produce different keys for different filters, paths, parameters and resolvers", func() {
				builder := NewBuilder("default")

				base, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "")
				otherFilter, _ := builder.Build("photos/a.jpg", "small", nil, "")
				otherPath, _ := builder.Build("photos/b.jpg", "thumbnail", nil, "")
				otherParams, _ := builder.Build("photos/a.jpg", "thumbnail", RuntimeParameters{"width": 1}, "")
				otherResolver, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "minio")

				signatures := map[string]bool{}
				for _, key := range []Key{base, otherFilter, otherPath, otherParams, otherResolver} {
					signatures[key.Signature] = true
				}

				g.Assert(len(signatures)).Equal(5)
			})

			g.It("Should return ErrInvalidParameters for values that cannot be serialized", func() {
				builder := NewBuilder("default")

				_, chanErr := builder.Build("photos/a.jpg", "thumbnail", RuntimeParameters{"c": make(chan int)}, "")
				_, nanErr := builder.Build("photos/a.jpg", "thumbnail", RuntimeParameters{"n": math.NaN()}, "")

				g.Assert(errors.Is(chanErr, ErrInvalidParameters)).IsTrue()
				g.Assert(errors.Is(nanErr, ErrInvalidParameters)).IsTrue()
			})

			g.It("Should return ErrInvalidPath for empty and traversing paths", func() {
				builder := NewBuilder("default")

				_, emptyErr := builder.Build("", "thumbnail", nil, "")
				_, traversalErr := builder.Build("photos/../../etc/passwd", "thumbnail", nil, "")

				g.Assert(emptyErr).Equal(ErrInvalidPath)
				g.Assert(traversalErr).Equal(ErrInvalidPath)
			})

			g.It("Should generate hex encoded sha256 signature", func() {
				builder := NewBuilder("default")

				key, _ := builder.Build("photos/a.jpg", "thumbnail", nil, "")

				g.Assert(len(key.Signature)).Equal(64)
				g.Assert(strings.Trim(key.Signature, "0123456789abcdef")).Equal("")
				g.Assert(key.String()).Equal(key.Signature)
			})

			g.It("Should not collide when names contain the field separator", func() {
				builder := NewBuilder("default")

				first, _ := builder.Build("photos/a.jpg", "c", nil, "a|b")
				second, _ := builder.Build("photos/a.jpg", "b|c", nil, "a")

				g.Assert(first.Signature == second.Signature).IsFalse()
			})
		})
	})
}
