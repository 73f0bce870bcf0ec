// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genealogy

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitGenealogy = 200
	rateBurstGenealogy = 100
)

// Lineage - family relations recorded at breeding
type Lineage interface {
	Kitty(kitty.Index) (*kitty.Kitty, error)
	Parents(kitty.Index) (kitty.Index, kitty.Index, bool)
	Children(kitty.Index, kitty.Index) []kitty.Index
	Siblings(kitty.Index) []kitty.Index
	Spouses(kitty.Index) []kitty.Index
}

//go:generate mockgen -destination=../mocks/lineage.go -package=mocks github.com/bitmark-inc/kittyd/rpc/genealogy Lineage

// Genealogy - type for the RPC
type Genealogy struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Lineage Lineage
}

// New - create the RPC handler
func New(log *logger.L, lineage Lineage) *Genealogy {
	return &Genealogy{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGenealogy, rateBurstGenealogy),
		Lineage: lineage,
	}
}

// ---

// FamilyArguments - kitty to describe
type FamilyArguments struct {
	Id kitty.Index `json:"id"`
}

// FamilyReply - all relations of one kitty
//
// Parents is empty for a created kitty
type FamilyReply struct {
	Id       kitty.Index   `json:"id"`
	Parents  []kitty.Index `json:"parents"`
	Siblings []kitty.Index `json:"siblings"`
	Spouses  []kitty.Index `json:"spouses"`
}

// Family - parents, siblings and spouses of a kitty
func (genealogy *Genealogy) Family(arguments *FamilyArguments, reply *FamilyReply) error {
	if err := ratelimit.Limit(genealogy.Limiter); nil != err {
		return err
	}

	id := arguments.Id
	if _, err := genealogy.Lineage.Kitty(id); nil != err {
		return err
	}

	reply.Id = id
	reply.Parents = []kitty.Index{}
	if p1, p2, found := genealogy.Lineage.Parents(id); found {
		reply.Parents = []kitty.Index{p1, p2}
	}
	reply.Siblings = genealogy.Lineage.Siblings(id)
	reply.Spouses = genealogy.Lineage.Spouses(id)
	return nil
}

// ---

// ChildrenArguments - a parent pair, in either order
type ChildrenArguments struct {
	Parent1 kitty.Index `json:"parent1"`
	Parent2 kitty.Index `json:"parent2"`
}

// ChildrenReply - children in birth order
type ChildrenReply struct {
	Children []kitty.Index `json:"children"`
}

// Children - kitties bred from a pair
func (genealogy *Genealogy) Children(arguments *ChildrenArguments, reply *ChildrenReply) error {
	if err := ratelimit.Limit(genealogy.Limiter); nil != err {
		return err
	}

	reply.Children = genealogy.Lineage.Children(arguments.Parent1, arguments.Parent2)
	return nil
}
