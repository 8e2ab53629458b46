package server

import (
	"html"
	"io"
)

// RootID is the id of the page element that holds the live tree.
const RootID = "vmini-root"

// clientScript keeps the page in sync with the server. Clicks and inputs on
// elements with an id are posted to /dispatch; HTML frames from /ws replace
// the root's content.
const clientScript = `
<script>
(function() {
    'use strict';

    var root = document.getElementById('` + RootID + `');
    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'html':
                    root.innerHTML = msg.html;
                    break;
                case 'error':
                    console.error('[vmini]', msg.error);
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function dispatch(el, event, value) {
        var init = {method: 'POST'};
        if (value !== undefined) {
            init.body = JSON.stringify({value: value});
            init.headers = {'Content-Type': 'application/json'};
        }
        fetch('/dispatch/' + encodeURIComponent(el.id) + '/' + event, init);
    }

    root.addEventListener('click', function(e) {
        var el = e.target.closest('[id]');
        if (el && root.contains(el) && el !== root) {
            dispatch(el, 'click');
        }
    });

    root.addEventListener('input', function(e) {
        if (e.target.id) {
            dispatch(e.target, 'input', e.target.value);
        }
    });

    connect();
})();
</script>
`

// writePage writes the playground document around the rendered tree.
func writePage(w io.Writer, title, body string) error {
	_, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<head>\n"+
		`<meta charset="utf-8">`+"\n"+
		"<title>"+html.EscapeString(title)+"</title>\n"+
		"</head>\n<body>\n"+
		`<div id="`+RootID+`">`+body+"</div>\n"+
		clientScript+
		"</body>\n</html>\n")
	return err
}
