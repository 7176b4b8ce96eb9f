package version

// Version is the current semantic version of wordsim.
const Version = "0.1.0"
