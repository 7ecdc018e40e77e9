package meow

// Version is the interpreter version.
const Version = "0.1.0"
