package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
)

const (
	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
	slideRelType     = "/slide"
)

type presentationXML struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationshipsXML struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type slideXML struct {
	CSld struct {
		SpTree struct {
			Shapes []shapeXML `xml:",any"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

// shapeXML is any direct child of the shape tree. Only p:sp carries a text
// frame; pictures, tables, connectors and groups are skipped.
type shapeXML struct {
	XMLName xml.Name
	TxBody  *struct {
		Paras []struct {
			Items []struct {
				XMLName xml.Name
				T       string `xml:"t"`
			} `xml:",any"`
		} `xml:"p"`
	} `xml:"txBody"`
}

func (s shapeXML) hasText() bool { return s.XMLName.Local == "sp" }

func (s shapeXML) text() string {
	if s.TxBody == nil {
		return ""
	}
	paras := make([]string, 0, len(s.TxBody.Paras))
	for _, p := range s.TxBody.Paras {
		var b strings.Builder
		for _, it := range p.Items {
			switch it.XMLName.Local {
			case "r", "fld":
				b.WriteString(it.T)
			case "br":
				b.WriteString("\n")
			}
		}
		paras = append(paras, b.String())
	}
	return strings.Join(paras, "\n")
}

// slideText walks slides in presentation order and shapes in tree order,
// joining the text of every shape that has a text frame.
func slideText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pptx: %w", err)
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	slides, err := slideOrder(files)
	if err != nil {
		return "", err
	}

	var texts []string
	for _, name := range slides {
		f, ok := files[name]
		if !ok {
			return "", fmt.Errorf("missing slide part %s", name)
		}
		var s slideXML
		if err := decodeXML(f, &s); err != nil {
			return "", fmt.Errorf("slide %s: %w", name, err)
		}
		for _, sh := range s.CSld.SpTree.Shapes {
			if sh.hasText() {
				texts = append(texts, sh.text())
			}
		}
	}
	return strings.Join(texts, "\n"), nil
}

// slideOrder follows the presentation's slide id list. Packages without a
// presentation part fall back to slide file numbering.
func slideOrder(files map[string]*zip.File) ([]string, error) {
	pf, ok := files[presentationPart]
	if !ok {
		return numberedSlides(files), nil
	}
	var pres presentationXML
	if err := decodeXML(pf, &pres); err != nil {
		return nil, fmt.Errorf("presentation: %w", err)
	}

	targets := map[string]string{}
	if rf, ok := files[presentationRels]; ok {
		var rels relationshipsXML
		if err := decodeXML(rf, &rels); err != nil {
			return nil, fmt.Errorf("presentation rels: %w", err)
		}
		for _, r := range rels.Rels {
			if strings.HasSuffix(r.Type, slideRelType) {
				targets[r.ID] = resolvePart("ppt", r.Target)
			}
		}
	}

	out := make([]string, 0, len(pres.SlideIDs))
	for _, id := range pres.SlideIDs {
		if t, ok := targets[id.RID]; ok {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return numberedSlides(files), nil
	}
	return out, nil
}

func numberedSlides(files map[string]*zip.File) []string {
	type numbered struct {
		name string
		n    int
	}
	var list []numbered
	for name := range files {
		dir, base := path.Split(name)
		if dir != "ppt/slides/" || !strings.HasPrefix(base, "slide") || !strings.HasSuffix(base, ".xml") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, "slide"), ".xml"))
		if err != nil {
			continue
		}
		list = append(list, numbered{name: name, n: n})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].n < list[j].n })

	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.name
	}
	return out
}

func resolvePart(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(base, target)
}

func decodeXML(f *zip.File, dst any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(io.LimitReader(rc, 64<<20)).Decode(dst)
}
