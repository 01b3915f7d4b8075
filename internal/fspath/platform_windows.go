package fspath

// Native is the platform of the host operating system.
var Native = Windows
