/*
Package propnl translates between short declarative sentences and formulas of
propositional logic, in both directions.

Description

A sentence like "If it rains, then the ground is wet." is encoded as the
formula "P → Q", together with a legend

   P = it rains
   Q = the ground is wet

In the other direction, a formula like "P ∧ ¬Q" is parsed and rendered as
natural language, with descriptions for the proposition letters supplied by
the client.

Contents

The work is done by sub-packages:

   token     splits formulas into tokens
   formula   parses tokens into syntax trees and collects their variables
   render    renders syntax trees as natural language
   encode    normalizes and encodes sentences, assigning proposition letters
   lexicon   holds the connective keywords for English and Portuguese
   grammar   an Earley recognizer for formulas, for cross-checking input

Package propnl ties them together with type Translator. All operations are
pure functions of their input: no state is kept between calls, and every
sentence is encoded with a fresh assignment of letters, unless the client
supplies a mapping to continue from.

Formula Syntax

Formulas consist of the letters A–Z for propositions, parentheses, and the
connectives ¬ (or ~), ∧ (or ^), ∨ (or v), → (or ->) and ↔ (or <->), listed
from highest to lowest priority.

Sentence Shapes

The encoder understands sentences of the forms "<clause>",
"if <clause> then <clause>", where a clause is a phrase or a list of phrases
joined by either "and" or "or", and a phrase may be prefixed with "not".
See package encode for the limitations of this approach.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package propnl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
