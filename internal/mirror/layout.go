package mirror

import (
	"strings"

	"github.com/rflorenc/windmill-client/pkg/models"
)

const (
	scriptSuffix   = ".script.yaml"
	flowSuffix     = ".flow.yaml"
	resourceSuffix = ".resource.yaml"
	variableSuffix = ".variable.yaml"
	scheduleSuffix = ".schedule.yaml"
)

var suffixes = map[Kind]string{
	KindScript:   scriptSuffix,
	KindFlow:     flowSuffix,
	KindResource: resourceSuffix,
	KindVariable: variableSuffix,
	KindSchedule: scheduleSuffix,
}

// extensions follows the naming of the wmill CLI so pulled trees stay
// familiar.
var extensions = map[models.ScriptLang]string{
	models.ScriptLangPython3:    "py",
	models.ScriptLangDeno:       "deno.ts",
	models.ScriptLangBun:        "bun.ts",
	models.ScriptLangNativets:   "fetch.ts",
	models.ScriptLangGo:         "go",
	models.ScriptLangBash:       "sh",
	models.ScriptLangPowershell: "ps1",
	models.ScriptLangPostgresql: "pg.sql",
	models.ScriptLangMysql:      "my.sql",
	models.ScriptLangBigquery:   "bq.sql",
	models.ScriptLangSnowflake:  "sf.sql",
	models.ScriptLangMssql:      "ms.sql",
	models.ScriptLangOracledb:   "odb.sql",
	models.ScriptLangGraphql:    "gql",
	models.ScriptLangPhp:        "php",
	models.ScriptLangRust:       "rs",
	models.ScriptLangAnsible:    "playbook.yml",
	models.ScriptLangCsharp:     "cs",
	models.ScriptLangNu:         "nu",
}

// Extension returns the content file extension of lang, without the dot.
func Extension(lang models.ScriptLang) string {
	if ext, ok := extensions[lang]; ok {
		return ext
	}
	return "txt"
}

// kindOf classifies a slash-separated file name relative to the root and
// returns the Windmill path it holds. Content files report ok=false.
func kindOf(name string) (Kind, string, bool) {
	for _, k := range Kinds {
		if p, ok := strings.CutSuffix(name, suffixes[k]); ok && p != "" {
			return k, p, true
		}
	}
	return "", "", false
}

// LanguageOf guesses the language of a content file from its name. The
// longest matching extension wins, so "x.pg.sql" is postgresql.
func LanguageOf(name string) (models.ScriptLang, bool) {
	var (
		best  models.ScriptLang
		found int
	)
	for lang, ext := range extensions {
		if strings.HasSuffix(name, "."+ext) && len(ext) > found {
			best, found = lang, len(ext)
		}
	}
	return best, found > 0
}
