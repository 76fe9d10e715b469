package cmd

// commandDocs documentation info used for help command.
type commandDocs struct {
	name    string
	params  string
	summary string
	// minArgs and maxArgs bound the argument count; maxArgs < 0 means unbounded.
	minArgs int
	maxArgs int
}

var commandTable = []commandDocs{
	{"INSERT", "key [key ...]", "Insert keys, reporting how many were new.", 1, -1},
	{"ERASE", "key [key ...]", "Erase keys, reporting how many were removed.", 1, -1},
	{"COUNT", "key", "1 if the key is present, otherwise 0.", 1, 1},
	{"FIND", "key", "Show the key and its bucket, or (nil).", 1, 1},
	{"SIZE", "", "Number of keys.", 0, 0},
	{"EMPTY", "", "1 if the set holds no keys.", 0, 0},
	{"CLEAR", "", "Remove every key and reset the bucket count.", 0, 0},
	{"KEYS", "", "List keys in iteration order.", 0, 0},
	{"DUMP", "", "Print the bucket layout.", 0, 0},
	{"STATS", "", "Bucket count, size and load factor.", 0, 0},
	{"SNAPSHOT", "", "Save a copy of the set.", 0, 0},
	{"RESTORE", "", "Replace the set with the saved copy.", 0, 0},
	{"DIFF", "", "1 if the set equals the saved copy.", 0, 0},
	{"SWAP", "", "Exchange the set and the saved copy.", 0, 0},
	{"HELP", "[command]", "Show help.", 0, 1},
	{"QUIT", "", "Leave the session.", 0, 0},
}

var commandAliases = map[string]string{
	"ADD":  "INSERT",
	"DEL":  "ERASE",
	"EXIT": "QUIT",
}

func lookupCommand(name string) (commandDocs, bool) {
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}
	for _, doc := range commandTable {
		if doc.name == name {
			return doc, true
		}
	}
	return commandDocs{}, false
}
