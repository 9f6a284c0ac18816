package version

// Version is the fixed program version reported by -v/--version.
const Version = "0.1.0"
