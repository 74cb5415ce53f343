package server

import "html/template"

// editorShell is the single-page editor chrome. The document itself is
// rendered server-side and swapped in whole over the websocket.
var editorShell = template.Must(template.New("editor").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>scholarfolio editor</title>
<script src="https://cdn.tailwindcss.com"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;900&family=Lora:ital,wght@0,400;0,500;0,600;0,700;1,400;1,500&family=JetBrains+Mono&display=swap" rel="stylesheet">
<style>
body { background-color: #f8fafc; color: #0f172a; }
.content-text { white-space: pre-wrap !important; word-wrap: break-word; }
.editable:hover { box-shadow: 0 0 0 4px rgba(155, 137, 179, 0.2); }
.edit-badge { background-color: #9B89B3; }
.edit-badge::after { content: 'EDIT'; }
#toolbar button:disabled { opacity: 0.3; cursor: default; }
</style>
</head>
<body class="antialiased text-slate-900">
<div id="toolbar" class="fixed top-0 left-0 right-0 z-[200] bg-white/90 backdrop-blur border-b border-slate-200 px-6 py-3 flex items-center gap-3 text-sm">
  <span class="font-black tracking-tight">scholarfolio</span>
  <button id="undo" title="Undo">&#8630;</button>
  <button id="redo" title="Redo">&#8631;</button>
  <select id="theme" class="border rounded px-2 py-1">
    {{range .Themes}}<option value="{{.}}"{{if eq . $.CurrentTheme}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <input id="color" type="color" value="{{.PrimaryColor}}" title="Primary color">
  <input id="search" type="search" placeholder="Search..." class="border rounded px-2 py-1">
  <button id="add-page" class="border rounded px-2 py-1">+ Page</button>
  <a href="/api/export" class="border rounded px-2 py-1">Export</a>
  <a href="/api/snapshot" class="border rounded px-2 py-1">Save JSON</a>
  <label class="border rounded px-2 py-1 cursor-pointer">Import<input id="import" type="file" accept="application/json" class="hidden"></label>
  {{if .HasAssist}}<span class="text-xs text-slate-400 uppercase tracking-widest">assist on</span>{{end}}
</div>
<div id="render-root" class="pt-24 p-12 md:p-24 min-h-screen"><div class="max-w-6xl mx-auto">{{.Content}}</div></div>
<script>
(function () {
  var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
  var root = document.getElementById('render-root');

  function send(msg) {
    if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  }

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === 'error') { console.warn(msg.error); return; }
    root.innerHTML = '<div class="max-w-6xl mx-auto">' + msg.html + '</div>';
    document.getElementById('undo').disabled = !msg.canUndo;
    document.getElementById('redo').disabled = !msg.canRedo;
  };

  root.addEventListener('click', function (e) {
    var page = e.target.closest('[data-page-id]');
    if (page) {
      e.preventDefault();
      send({ action: 'setActivePage', pageId: page.getAttribute('data-page-id') });
      return;
    }
    var el = e.target.closest('.editable');
    if (!el) return;
    e.preventDefault();
    e.stopPropagation();
    send({ action: 'select', elementType: el.getAttribute('data-element-type'), path: el.getAttribute('data-path') });
    var current = el.querySelector('.content-text');
    var text = prompt('Edit text', current ? current.textContent : '');
    if (text !== null) {
      send({ action: 'update', path: el.getAttribute('data-path') + '.text', value: text });
    }
  });

  document.getElementById('undo').onclick = function () { send({ action: 'undo' }); };
  document.getElementById('redo').onclick = function () { send({ action: 'redo' }); };
  document.getElementById('add-page').onclick = function () { send({ action: 'addPage' }); };
  document.getElementById('theme').onchange = function () { send({ action: 'setTheme', value: this.value }); };
  document.getElementById('color').onchange = function () { send({ action: 'setPrimaryColor', value: this.value }); };

  var searchTimer = null;
  document.getElementById('search').oninput = function () {
    clearTimeout(searchTimer);
    var q = this.value;
    searchTimer = setTimeout(function () { send({ action: 'setSearch', query: q }); }, 200);
  };

  document.getElementById('import').onchange = function () {
    var file = this.files[0];
    if (!file) return;
    file.text().then(function (body) {
      return fetch('/api/snapshot', { method: 'POST', body: body });
    }).then(function (resp) {
      if (resp.ok) location.reload();
      else resp.text().then(function (t) { alert(t); });
    });
  };

  document.addEventListener('keydown', function (e) {
    if (!(e.ctrlKey || e.metaKey)) return;
    if (e.key === 'z' && !e.shiftKey) { e.preventDefault(); send({ action: 'undo' }); }
    if (e.key === 'y' || (e.key === 'z' && e.shiftKey)) { e.preventDefault(); send({ action: 'redo' }); }
  });
})();
</script>
</body>
</html>
`))
