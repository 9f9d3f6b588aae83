// Package templates renders the directory index page. It is a pure
// rendering layer: WriteIndex takes the request path and prepared
// entries and emits markup, nothing here touches the filesystem.
package templates

import (
	"html/template"
	"io"
)

var glyphs = map[string]string{
	IconDir:     "\U0001F4C1",
	IconSymlink: "\U0001F517",
	IconDisc:    "\U0001F4BF",
	IconArchive: "\U0001F4E6",
	IconImage:   "\U0001F5BC️",
	IconVideo:   "\U0001F3A5",
	IconAudio:   "\U0001F3B5",
	IconPdf:     "\U0001F4D5",
	IconDoc:     "\U0001F4D8",
	IconSheet:   "\U0001F4D7",
	IconSlides:  "\U0001F4D9",
	IconText:    "\U0001F4C4",
	IconCode:    "\U0001F4DD",
	IconExec:    "⚙️",
	IconConfig:  "⚙️",
	IconFont:    "\U0001F524",
	IconFile:    "\U0001F4C4",
}

func glyph(tag string) string {
	if g, ok := glyphs[tag]; ok {
		return g
	}
	return glyphs[IconFile]
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"glyph": glyph,
}).Parse(indexHTML))

type indexArgs struct {
	CurrentPath string
	Entries     []Entry
}

// WriteIndex renders the index page for currentPath (the decoded request
// path relative to the served root, "" at the root).
func WriteIndex(w io.Writer, currentPath string, entries []Entry) error {
	return indexTemplate.Execute(w, indexArgs{
		CurrentPath: currentPath,
		Entries:     entries,
	})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>File Index</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            margin: 20px;
            margin-bottom: 100px;
            background-color: #f8f9fa;
        }
        .entry {
            display: flex;
            align-items: center;
            padding: 15px;
            margin: 5px 0;
            background-color: white;
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
        }
        .entry:hover { background-color: #f8f9fa; }
        .info-group {
            display: flex;
            align-items: center;
            gap: 20px;
            margin-left: auto;
        }
        a { text-decoration: none; color: inherit; }
        a:hover { text-decoration: underline; }
        h1 {
            color: #333;
            border-bottom: 2px solid #ddd;
            padding-bottom: 10px;
            font-size: 1.5em;
            word-break: break-all;
        }
        .name-column { flex: 2; min-width: 0; word-break: break-all; }
        .size-column { flex: 0.8; text-align: right; min-width: 80px; }
        .date-column { flex: 1.2; text-align: right; white-space: nowrap; min-width: 150px; }
        .file-icon {
            margin-right: 8px;
            font-size: 1.2em;
            display: inline-block;
            width: 32px;
            text-align: center;
        }
        .preview-container { display: none; margin: 8px 0 8px 32px; }
        .preview-container img, .preview-container video {
            max-width: 160px;
            max-height: 90px;
            object-fit: contain;
            border-radius: 4px;
            display: block;
        }
        .preview-container audio { width: 320px; height: 32px; display: block; }
        .download-btn, .preview-btn {
            color: white;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 0.8em;
            min-width: 50px;
            text-align: center;
            white-space: nowrap;
            margin-right: 10px;
            display: inline-block;
        }
        .download-btn { background-color: #4CAF50; text-decoration: none; }
        .preview-btn { background-color: #2196F3; cursor: pointer; }
        @media (max-width: 768px) {
            body { margin: 10px; }
            .entry { flex-direction: column; align-items: flex-start; gap: 8px; padding: 12px; }
            .name-column { flex: 1; width: 100%; margin-bottom: 4px; }
            .info-group { width: 100%; justify-content: flex-start; flex-wrap: wrap; gap: 10px; }
            .size-column { min-width: auto; order: 2; }
            .date-column { min-width: auto; width: 100%; text-align: left; order: 3; }
            .download-btn { order: 1; margin-right: 0; }
            h1 { font-size: 1.2em; }
        }
    </style>
</head>
<body>
    <h1>Index of /{{.CurrentPath}}</h1>
    {{range .Entries}}
    <div class="entry">
        <div class="name-column">
            {{if .IsDir}}
            <a href="./{{.Name}}/" class="directory">{{glyph .Icon}} {{.DisplayName}}/</a>
            {{else}}
            <a href="./{{.Name}}">
                <span class="file-icon" id="icon-{{.Name}}">{{glyph .Icon}}</span>
                <span class="preview-container" id="preview-{{.Name}}"></span>
                {{.DisplayName}}
            </a>
            {{end}}
        </div>
        <div class="info-group">
            {{if not .IsDir}}
                {{if .PreviewURL}}
                <span class="preview-btn" onclick="togglePreview('{{.PreviewURL}}', '{{.Name}}')">Preview</span>
                {{end}}
                <a href="./{{.Name}}" class="download-btn" download="{{.Name}}">Download</a>
                <div class="size-column">{{.SizeLabel}}</div>
            {{end}}
            <div class="date-column" title="{{.ModifiedAgo}}">{{.ModifiedLabel}}</div>
        </div>
    </div>
    {{end}}
    <script>
    function togglePreview(url, name) {
        var container = document.getElementById('preview-' + name);
        var icon = document.getElementById('icon-' + name);
        var ext = name.split('.').pop().toLowerCase();

        if (container.style.display === 'block') {
            container.style.display = 'none';
            icon.style.display = 'inline-block';
            container.innerHTML = '';
            return;
        }

        icon.style.display = 'none';
        container.style.display = 'block';

        if (['jpg', 'jpeg', 'png', 'gif', 'webp'].indexOf(ext) >= 0) {
            container.innerHTML = '<img src="' + url + '" alt="' + name + '">';
        } else if (['mp4', 'webm'].indexOf(ext) >= 0) {
            container.innerHTML = '<video src="' + url + '" controls></video>';
        } else if (['mp3', 'wav', 'ogg'].indexOf(ext) >= 0) {
            container.innerHTML = '<audio src="' + url + '" controls></audio>';
        }
    }
    </script>
</body>
</html>
`
