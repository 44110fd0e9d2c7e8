package icon

// prefixIcon is one entry of an ordered prefix table. Prefix tables are
// scanned first to last, so an earlier prefix shadows any later one it
// covers.
type prefixIcon struct {
	prefix string
	icon   string
}

// extensionIcons maps a lower-cased file extension to its icon. Each
// extension belongs to exactly one category; the map literal rejects
// duplicate keys at compile time.
var extensionIcons = map[string]string{
	// Documents and text
	"md": "📑", "txt": "📝", "rst": "📝", "log": "🪵",
	"pdf": "📚", "djvu": "📚", "epub": "📚",
	"doc": "📄", "docx": "📄", "odt": "📄", "rtf": "📄",
	"xls": "📄", "xlsx": "📄", "ods": "📄",
	"ppt": "📄", "pptx": "📄", "odp": "📄",
	"csv": "📊",

	// Images
	"jpg": "📸", "jpeg": "📸", "png": "📸", "gif": "📸",
	"bmp": "📸", "svg": "📸", "webp": "📸",
	"xib": "🖼️", "icns": "🖼️",

	// Video
	"mp4": "🎬", "avi": "🎬", "mkv": "🎬", "mov": "🎬",
	"flv": "🎬", "wmv": "🎬", "webm": "🎬",

	// Audio
	"mp3": "🎧", "wav": "🎧", "ogg": "🎧", "flac": "🎧",
	"m4a": "🎧", "aac": "🎧",

	// Archives and packages
	"zip": "📦", "tar": "📦", "gz": "📦", "bz2": "📦",
	"xz": "📦", "7z": "📦", "rar": "📦", "pkg": "📦",
	"deb": "📥", "rpm": "📥",

	// Source code
	"py": "🐍", "sh": "💻", "js": "💻", "css": "🎨",
	"cpp": "🔬", "c": "🔬", "java": "☕", "go": "🐹",
	"rb": "♦️", "rs": "🦀", "php": "🐘", "h": "🧢",
	"hpp": "🧢", "class": "☕", "kt": "💻", "scala": "📐",
	"jsx": "💻", "tf": "🏗️", "tsx": "💻", "vue": "🟩",
	"dart": "🦋", "lua": "💻", "pl": "🐪", "r": "📈",
	"m": "💻", "mm": "💻", "asm": "💻", "s": "💻",
	"f": "🅵", "f90": "🅵", "lisp": "💻", "hs": "💻",
	"ml": "Ⓜ️", "clj": "💻", "groovy": "💻", "jl": "💻",
	"ex": "💻", "exs": "💻", "elm": "💻", "coffee": "☕",
	"ts": "🅃 ", "d": "🅳 ", "cs": "💻", "vb": "💻",
	"fs": "💻", "sql": "🗄️", "pas": "🏫", "lhs": "💻",
	"cob": "💻", "cl": "λ", "lsp": "λ",
	"ada": "✈️", "adb": "✈️", "ads": "✈️",
	"bash": "💰", "fish": "🐟", "zsh": "🆉 ",
	"vim": "🖖", "diff": "🆚", "patch": "🩹",

	// Build and tooling
	"cmake": "🏭", "mvn": "🏹", "gradle": "🐘", "ninja": "🥷",
	"lock": "🔒", "mod": "🐹", "gem": "💎",

	// Configuration
	"conf": "⚙️", "config": "⚙️", "toml": "⚙️", "cfg": "⚙️",
	"yaml": "🅈 ", "yml": "🅈 ", "json": "🏝️", "ini": "⚙️",
	"env": "🌍", "rc": "👟", "cron": "📅",

	// Fonts
	"ttf": "🔤", "otf": "🔤", "woff": "🔤", "woff2": "🔤",

	// Keys and certificates
	"pem": "🔑", "crt": "🔑", "key": "🔑", "pub": "🔑", "p12": "🔑",

	// Disk, VM and system images
	"iso": "💽", "img": "💽", "qcow": "🐮", "qcow2": "🐮",
	"dmg": "💿", "vv": "🕹️",

	// System units and sockets
	"target": "🎯", "service": "🚀", "socket": "🔌", "sock": "🧦",

	// Apple development
	"app": "📱", "plist": "📋", "scpt": "📜", "swift": "🐦",
	"xcodeproj": "🛠️", "mlmodel": "🧠", "arobject": "🎭",
	"sks": "🎮", "car": "🚗", "xcassets": "🗂️", "dsym": "🐛",
	"terminal": "🖥️", "webloc": "🔗", "workflow": "🔄",
	"bundle": "🎁", "pb": "📋", "ipa": "📲", "framework": "🏗️",
	"playground": "🎠", "entitlements": "🔐",
	"provisionprofile": "🔏", "strings": "🔠", "scnassets": "🌟",

	// Diagrams
	"mermaid": "🌊", "plantuml": "🌱", "dot": "📍", "drawio": "📉",

	// Web and markup
	"html": "🌐",

	// Misc
	"torrent": "🌊", "o": "🧩", "ko": "🌰", "db": "🗄️",
	"blend": "🧈", "apk": "📱", "tmp": "⏳", "ccl": "🎨",
	"part": "🧩", "bak": "🔙", "cache": "⏱️", "desktop": "🖥️",
	"bin": "💾", "pid": "🪪", "swap": "🔄",
}

// exactNameIcons maps well-known file names to icons, checked before the
// extension table.
var exactNameIcons = map[string]string{
	"vmlinuz":           "🐧",
	"grub":              "🥾",
	"shadow":            "🕶️",
	"fstab":             "⬜",
	"Makefile":          "🧰",
	"Makefile.am":       "🏭",
	"configure.ac":      "🏭",
	"CmakeLists.txt":    "🏭",
	"meson.build":       "🏭",
	".gitignore":        "🙈",
	".dockerignore":     "🙈",
	".hgignore":         "🙈",
	".npmignore":        "🙈",
	".bzrignore":        "🙈",
	".eslintignore":     "🙈",
	".terraformignore":  "🙈",
	".prettierignore":   "🙈",
	".p4ignore":         "🙈",
	"Dockerfile":        "🐳",
	".gitlab-ci.yml":    "🦊",
	".travis.yml":       "⛑️",
	"swagger.yaml":      "🧣",
	"Jenkinsfile":       "🔴",
	"tags":              "🏷️",
	"LICENSE":           "⚖️",
	".ninja_deps":       "🥷",
	".ninja_log":        "🥷",
}

// namePrefixIcons covers system files that commonly carry version or
// variant suffixes, such as vmlinuz-6.8.0-41-generic.
var namePrefixIcons = []prefixIcon{
	{"vmlinuz", "🐧"},
	{"grub", "🥾"},
	{"shadow", "🕶️"},
	{"fstab", "⬜"},
}

// devExactIcons maps exact device names under the device directory.
var devExactIcons = map[string]string{
	"loop":            "🔁",
	"null":            "🕳️",
	"zero":            "🕳️",
	"random":          "🎲",
	"urandom":         "🎲",
	"tty":             "🖥️",
	"usb":             "🔌",
	"vga_arbiter":     "🖼️",
	"vhci":            "🔌",
	"vhost-net":       "🌐",
	"vhost-vsock":     "💬",
	"mcelog":          "📋",
	"media0":          "🎬",
	"mei0":            "🧠",
	"mem":             "🗄️",
	"hpet":            "⏱️",
	"hwrng":           "🎲",
	"kmsg":            "📜",
	"kvm":             "🌰",
	"zram":            "🗜️",
	"udmabuf":         "🔄",
	"uhid":            "🕹️",
	"rfkill":          "📡",
	"ppp":             "🌐",
	"ptmx":            "🖥️",
	"userfaultfd":     "🚧",
	"nvram":           "🗄️",
	"port":            "🔌",
	"autofs":          "🚗",
	"btrfs-control":   "🌳",
	"console":         "🖥️",
	"full":            "🔒",
	"fuse":            "🔥",
	"gpiochip0":       "📌",
	"cuse":            "🧩",
	"cpu_dma_latency": "⏱️",
}

// devPrefixIcons matches device families by name prefix.
var devPrefixIcons = []prefixIcon{
	{"loop", "🔁"},
	{"sd", "💽"},
	{"tty", "🖥️"},
	{"usb", "🔌"},
	{"video", "🎥"},
	{"nvme", "💽"},
	{"lp", "🖨️"},
	{"hidraw", "🔠"},
	{"vcs", "📟"},
	{"vcsa", "📟"},
	{"ptp", "🕰️"},
	{"rtc", "🕰️"},
	{"watchdog", "🐕"},
	{"mtd", "⚡"},
}
