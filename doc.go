// Package charstats computes information-theoretic statistics over plain-text
// corpora: character entropy, conditional entropy of adjacent characters,
// mutual information, and the average code length of a Huffman code built
// from character frequencies.
//
// Text is first reduced to a 27-symbol alphabet, the letters A through Z plus
// a single placeholder for any run of non-letters.  A Huffman tree built from
// one corpus can be scored against the frequencies of another.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Entropy_(information_theory)>
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package charstats
