package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

const (
	// Filename is the name offered when the document is downloaded.
	Filename = "timed-button.html"
	// MIMEType is the content type of the generated document.
	MIMEType = "text/html"
)

// documentSource is the standalone page. Values are interpolated verbatim:
// text/template performs no escaping, so callers own CSS and URL syntax.
// The reveal is bound to the window load event, not DOMContentLoaded.
const documentSource = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Timed Button</title>
    <style>
        .button-container {
            text-align: {{.Alignment}};
        }
        
        .timed-button {
            width: {{.Width}};
            height: {{.Height}};
            background-color: {{.BackgroundColor}};
            border: {{.BorderWidth}} solid {{.BorderColor}};
            color: {{.TextColor}};
            font-size: {{.FontSize}};
            font-weight: {{.FontWeight}};
            font-family: {{.FontFamily}};
            text-decoration: none;
            border-radius: 8px;
            cursor: pointer;
            transition: all 0.3s ease;
            display: inline-flex;
            align-items: center;
            justify-content: center;
            opacity: 0;
            transform: translateY(20px);
        }
        
        .timed-button.show {
            opacity: 1;
            transform: translateY(0);
        }
        
        .timed-button:hover {
            opacity: 0.9;
            transform: translateY(-2px);
            box-shadow: 0 4px 12px rgba(0, 0, 0, 0.2);
        }
    </style>
</head>
<body>
    <div class="button-container">
        <a href="{{.LinkURL}}" target="_blank" rel="noopener noreferrer" class="timed-button" id="timedButton">
            {{.ButtonText}}
        </a>
    </div>

    <script>
        window.addEventListener('load', function() {
            setTimeout(function() {
                const button = document.getElementById('timedButton');
                button.classList.add('show');
            }, {{.DelayMillis}});
        });
    </script>
</body>
</html>`

var documentTemplate = template.Must(template.New("timed-button").Parse(documentSource))

// Generate renders the self-contained HTML document for b. It has no side
// effects: the same button always yields byte-identical output.
func Generate(b config.Button) string {
	var buf strings.Builder
	if err := documentTemplate.Execute(&buf, b); err != nil {
		// Execute only fails on writer errors and strings.Builder never returns one.
		panic(fmt.Sprintf("codegen: render document: %v", err))
	}
	return buf.String()
}
