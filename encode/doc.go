/*
Package encode translates short natural-language sentences into propositional
formulas.

Sentences are first normalized (see Normalize). The encoder then splits a
sentence on the fixed keywords of a lexicon:

   if <left> then <right>      →   <left> → <right>
   <a> and <b> and …           →   (<a> ∧ <b> ∧ …)
   <a> or <b> or …             →   (<a> ∨ <b> ∨ …)
   not <phrase>                →   ¬<phrase>

Every distinct phrase is assigned a single uppercase letter, starting with P,
and the same phrase is always assigned the same letter. The phrases and their
letters are collected in a Mapping, in the order of assignment.

Limitations

The encoder splits on keywords, it does not parse a grammar. There is no
nesting of connectives beyond "if … then …" over one level of "and" or "or",
a clause may not mix "and" and "or" (the first keyword found wins, the other
one becomes part of a phrase), and parentheses in sentences have no meaning.
Negation is recognized as a prefix of a phrase only.

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
package encode

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
