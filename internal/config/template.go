package config

// Template is the commented starter config written by `wordsim config init`.
const Template = `// wordsim configuration

compare {
    min_match 80.0             // Minimum similarity percentage to report
    workers 0                  // Comparison workers (0 = one per CPU)
    algorithm "levenshtein"    // levenshtein, damerau-levenshtein, jaro, jaro-winkler, cosine
    stem false                 // Porter2-stem tokens before comparing
    stream_threshold 10000     // Stream row-by-row above this many words (0 = never)
}

watch {
    debounce_ms 250            // Quiet period before recomputing in watch mode
}
`
