package web

import (
	"bytes"
	"html/template"
)

type templates struct {
	page *template.Template
	game *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(baseTemplate))
	// The game fragment is defined in the same set so the page can include it.
	template.Must(base.New("game").Parse(gameTemplate))
	page := template.Must(template.Must(base.Clone()).New("content").Parse(`{{template "game" .}}`))
	// Standalone game template used for htmx fragment rendering
	game := template.Must(template.New("game_only").Parse(gameTemplate))
	return &templates{page: page.Lookup("base"), game: game}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const baseTemplate = `<!doctype html><html lang="en"><head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Elite Tic Tac Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;background:#020617;color:#e2e8f0;font-family:system-ui,sans-serif}
.panel{width:100%;max-width:28rem;padding:2rem;border-radius:1.5rem;background:rgba(15,23,42,.7);border:1px solid #1e293b;box-shadow:0 25px 50px rgba(0,0,0,.5)}
h1{margin:0;text-align:center;font-size:1.9rem;font-weight:900;background:linear-gradient(90deg,#22d3ee,#fb7185);-webkit-background-clip:text;background-clip:text;color:transparent}
.subtitle{margin:.25rem 0 2rem;text-align:center;color:#64748b;font-size:.75rem;font-weight:700;letter-spacing:.2em;text-transform:uppercase}
.turns{display:flex;justify-content:center;gap:1rem;margin-bottom:2rem}
.pill{padding:.5rem 1rem;border-radius:999px;border:1px solid #334155;background:#1e293b;opacity:.5;font-weight:700;font-size:.85rem}
.pill.active{opacity:1;transform:scale(1.1)}
.pill.x.active{border-color:#22d3ee;background:rgba(6,182,212,.2)}
.pill.o.active{border-color:#fb7185;background:rgba(244,63,94,.2)}
.grid{display:grid;grid-template-columns:repeat(3,1fr);gap:.75rem;margin-bottom:2rem}
.grid form{margin:0}
.cell{width:100%;aspect-ratio:1;border-radius:.75rem;border:1px solid #334155;background:rgba(30,41,59,.8);font-size:3rem;font-weight:900;cursor:pointer}
.cell:disabled{cursor:default}
.cell.winning{background:rgba(79,70,229,.4);border:2px solid #818cf8}
.x{color:#22d3ee}.o{color:#fb7185}.draw{color:#94a3b8}
.result{text-align:center;font-size:1.9rem;font-weight:900;margin-bottom:1rem}
.again{width:100%;padding:1rem;border-radius:1rem;border:1px solid #334155;background:#1e293b;color:inherit;font-weight:700;cursor:pointer}
.reset{width:100%;padding:.75rem;border:0;background:none;color:#64748b;font-size:.75rem;font-weight:700;letter-spacing:.2em;text-transform:uppercase;cursor:pointer}
</style>
</head><body>{{template "content" .}}</body></html>`

const gameTemplate = `
<div id="game" class="panel">
  <h1>ELITE TIC TAC TOE</h1>
  <p class="subtitle">Local Multiplayer</p>
  <div class="turns">
    <span class="pill x{{if .XActive}} active{{end}}">PLAYER X</span>
    <span class="pill o{{if .OActive}} active{{end}}">PLAYER O</span>
  </div>
  <div class="grid">
    {{range .Cells}}
    <form action="/cells/{{.Index}}" method="post" hx-post="/cells/{{.Index}}" hx-target="#game" hx-swap="outerHTML">
      <button type="submit" class="cell {{.Class}}{{if .Winning}} winning{{end}}" data-index="{{.Index}}"{{if .Disabled}} disabled{{end}}>{{.Symbol}}</button>
    </form>
    {{end}}
  </div>
  <form action="/reset" method="post" hx-post="/reset" hx-target="#game" hx-swap="outerHTML">
  {{if .Over}}
    <div class="result {{.ResultClass}}">{{.Result}}</div>
    <button type="submit" class="again">PLAY AGAIN</button>
  {{else}}
    <button type="submit" class="reset">Reset Game</button>
  {{end}}
  </form>
</div>
`
