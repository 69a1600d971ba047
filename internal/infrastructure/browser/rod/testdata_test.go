package rod

const (
	basicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	interactiveHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="btn">Click Me</button>
	<button id="off" disabled>Disabled</button>
	<a id="hidden" style="display:none" href="/x">Hidden link</a>
	<div id="result"></div>
	<script>
		document.getElementById('btn').addEventListener('click', function() {
			document.getElementById('result').textContent = 'Clicked!';
		});
	</script>
</body>
</html>`

	searchFormHTML = `<!DOCTYPE html>
<html>
<body>
	<form action="/results" method="get">
		<input id="q" type="search" name="q" value="old text" />
	</form>
</body>
</html>`

	scrollableHTML = `<!DOCTYPE html>
<html>
<body style="height: 5000px;">
	<h1 id="top">Top of Page</h1>
	<div style="margin-top: 2000px;" id="middle">Middle</div>
	<div style="margin-top: 2000px;" id="bottom">Bottom</div>
</body>
</html>`
)
