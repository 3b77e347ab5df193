// Package threads decides which topical thread a new star belongs to,
// using TF-IDF cosine similarity over the texts of stars already assigned
// to threads of the same emotion.
package threads

import (
	"math"
	"strings"
	"unicode"
)

// BestMatch compares query against every candidate and returns the index of
// the best-matching candidate and its cosine similarity. Ties break to the
// lowest index. Texts reduced to nothing by tokenization (stop-words only)
// score 0 against everything. Callers must pass at least one candidate;
// an empty slice yields (-1, 0).
//
// The function is pure and safe for concurrent use.
func BestMatch(query string, candidates []string) (int, float64) {
	if len(candidates) == 0 {
		return -1, 0
	}

	docs := make([][]string, 0, len(candidates)+1)
	docs = append(docs, tokenize(query))
	for _, c := range candidates {
		docs = append(docs, tokenize(c))
	}

	// Document frequency over the pooled corpus of query plus candidates.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := len(docs)
	idf := func(term string) float64 {
		// Smoothed IDF; never zero, so every term contributes.
		return math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	weigh := func(doc []string) map[string]float64 {
		tf := make(map[string]float64, len(doc))
		for _, term := range doc {
			tf[term]++
		}
		vec := make(map[string]float64, len(tf))
		for term, f := range tf {
			vec[term] = f * idf(term)
		}
		return vec
	}

	queryVec := weigh(docs[0])
	bestIndex, bestScore := 0, cosine(queryVec, weigh(docs[1]))
	for i := 2; i < len(docs); i++ {
		if score := cosine(queryVec, weigh(docs[i])); score > bestScore {
			bestIndex, bestScore = i-1, score
		}
	}
	return bestIndex, bestScore
}

// cosine returns the cosine similarity of two sparse vectors, defined as 0
// when either vector is zero.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// tokenize lowercases, splits on non-alphanumeric runes, and drops
// stop-words and single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
