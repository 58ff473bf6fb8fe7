// Package source holds the language-neutral declaration tree that convention
// rules inspect.
//
// A File is produced by a Parser (see the kotlin subpackage) and contains the
// file's top-level declarations. Each Declaration carries a Kind tag and an
// optional name; nested members (methods, inner classes, companion objects)
// hang off their parent and are never visible through File.TopLevel.
//
//	f, err := kotlin.NewParser().ParseFile("solutions.kt")
//	for obj := range f.TopLevel(source.KindObject) {
//		fmt.Println(obj.Name)
//	}
package source
