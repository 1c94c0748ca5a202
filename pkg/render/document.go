package render

import (
	"fmt"
	"io"
	"net/http"

	"github.com/vango-dev/primitives/pkg/vdom"
)

// Document is a complete HTML page around a rendered tree.
type Document struct {
	Title string

	// Lang defaults to "en".
	Lang string

	Body *vdom.VNode

	// Styles are inline CSS blocks.
	Styles []string

	// LiveURL, when set, adds the live client, which connects a websocket
	// to LiveURL, forwards events from data-on-* elements and swaps in the
	// HTML frames the server sends back.
	LiveURL string
}

// RenderDocument writes doc to w. If w is an http.Flusher the head is
// flushed before the body is rendered.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+"\n"+`<meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}
	if doc.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(doc.Title)); err != nil {
			return err
		}
	}
	for _, style := range doc.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	if _, err := io.WriteString(w, `<div data-live-root>`); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, doc.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div>\n"); err != nil {
		return err
	}

	if doc.LiveURL != "" {
		if _, err := fmt.Fprintf(w, "<script data-live-url=\"%s\">%s</script>\n", escapeAttr(doc.LiveURL), liveClient); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// liveClient is the browser side of the live endpoint. Frames from the
// server replace the contents of [data-live-root], teleport containers
// included.
const liveClient = `(function(){
var s=document.currentScript,root=document.querySelector("[data-live-root]");
var u=new URL(s.dataset.liveUrl,location.href);u.protocol=u.protocol.replace("http","ws");
var ws=new WebSocket(u);
ws.onmessage=function(m){root.innerHTML=m.data;};
function send(e,v){var el=e.target.closest("[data-hid]");if(!el||!el.hasAttribute("data-on-"+e.type))return;ws.send(JSON.stringify({hid:el.dataset.hid,event:e.type,value:v}));}
["click","press","focusin","focusout","pointerover","pointerout"].forEach(function(t){root.addEventListener(t,function(e){
var type={focusin:"focus",focusout:"blur",pointerover:"pointerenter",pointerout:"pointerleave"}[t]||t;
send({type:type,target:e.target},null);});});
root.addEventListener("keydown",function(e){send(e,e.key);});
})();`
