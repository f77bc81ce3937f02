package version

// Version is the released protanno version.
const Version = "0.1.0"
