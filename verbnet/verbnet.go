// Package verbnet indexes the verb members of the VerbNet class files.
//
// A class file holds one VNCLASS with its MEMBERS and any number of nested
// VNSUBCLASS elements:
//
//	<VNCLASS ID="give-13.1">
//	  <MEMBERS><MEMBER name="give" wn="give%2:40:00"/></MEMBERS>
//	  <SUBCLASSES>
//	    <VNSUBCLASS ID="give-13.1-1">...</VNSUBCLASS>
//	  </SUBCLASSES>
//	</VNCLASS>
package verbnet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/pragbank/lemma"
)

// Null is the class returned for verbs without a VerbNet class.
const Null = "_null_"

type member struct {
	Name string `xml:"name,attr"`
}

type class struct {
	Id         string   `xml:"ID,attr"`
	Members    []member `xml:"MEMBERS>MEMBER"`
	Subclasses []class  `xml:"SUBCLASSES>VNSUBCLASS"`
}

// Index maps verb lemmas to the ids of the classes they are members of.
type Index struct {
	classes map[string][]string
}

func NewIndex() *Index {
	return &Index{classes: map[string][]string{}}
}

// LoadIndex reads every *.xml file of dir. Files are read in name order and
// subclasses after their parent, so the class ids of a lemma keep that
// order.
func LoadIndex(dir string) (*Index, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no VerbNet class files in %s", dir)
	}
	sort.Strings(paths)

	idx := NewIndex()
	for _, p := range paths {
		if err := idx.addFile(p); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
	}

	return idx, nil
}

func (idx *Index) addFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var c class
	if err := xml.NewDecoder(f).Decode(&c); err != nil {
		return err
	}

	if c.Id == "" {
		return errors.New("missing class ID")
	}

	idx.add(c)
	return nil
}

func (idx *Index) add(c class) {
	for _, m := range c.Members {
		idx.classes[m.Name] = append(idx.classes[m.Name], c.Id)
	}
	for _, sub := range c.Subclasses {
		idx.add(sub)
	}
}

// Classes returns the class ids of lemma, or nil.
func (idx *Index) Classes(lemma string) []string {
	return idx.classes[lemma]
}

// Len returns the number of indexed lemmas.
func (idx *Index) Len() int {
	return len(idx.classes)
}

// Lookup lemmatizes word as a verb and returns the name of its first class,
// the part of the class id before the first "-" ("give-13.1" is "give").
// A nil lm looks up word as is.
func (idx *Index) Lookup(word string, lm lemma.Lemmatizer) string {
	l := word
	if lm != nil {
		l = lm.Lemmatize(word, lemma.Verb)
	}

	ids := idx.Classes(l)
	if len(ids) == 0 {
		return Null
	}

	name, _, _ := strings.Cut(ids[0], "-")
	return name
}
