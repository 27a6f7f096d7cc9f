package extract

// extractionScript is evaluated once, in-page, against the loaded slide
// document. It is self-contained on purpose (§9 "in-page evaluation
// bridge"): it never references anything outside the page, and it
// returns a single JSON-serializable value. Everything that needs a
// computed style or a bounding rectangle happens here; every unit
// conversion, colour parse, and rotation decomposition happens back in
// the host (package style) against the raw values this script returns.
const extractionScript = `(() => {
  "use strict";

  const INLINE_TAGS = ["span","b","strong","i","em","u","code","br","small","sup","sub","a"];
  const BULLET_GLYPHS = ["•","-","*","▪","▸","○","●","◆","◇","■","□"];

  const processed = new Set();
  const errors = [];
  let nodeCount = 0;
  let claimedCount = 0;

  function addError(category, message) {
    errors.push({ category: category, message: message });
  }

  function markProcessed(el) {
    if (!el || processed.has(el)) return;
    processed.add(el);
    claimedCount++;
    for (const child of Array.from(el.children)) markProcessed(child);
  }

  function isLayoutDisplay(display) {
    return display === "flex" || display === "inline-flex" || display === "grid" || display === "inline-grid";
  }

  function rectOf(el) {
    const r = el.getBoundingClientRect();
    return {
      x: r.left, y: r.top, width: r.width, height: r.height,
      offsetWidth: el.offsetWidth, offsetHeight: el.offsetHeight
    };
  }

  function hasPositiveRect(r) {
    return r.width > 0 && r.height > 0;
  }

  function pseudoHasContent(el, pseudo) {
    const cs = getComputedStyle(el, pseudo);
    const c = cs.content;
    return c && c !== "none" && c !== "normal";
  }

  function trimmedText(el) {
    return (el.textContent || "").replace(/\s+/g, " ").trim();
  }

  function startsWithManualBullet(text) {
    for (const g of BULLET_GLYPHS) {
      if (text.startsWith(g + " ") || text.startsWith(g + "\t")) return true;
    }
    return false;
  }

  function borderSides(cs) {
    return {
      left: { width: parseFloat(cs.borderLeftWidth) || 0, color: cs.borderLeftColor, style: cs.borderLeftStyle },
      right: { width: parseFloat(cs.borderRightWidth) || 0, color: cs.borderRightColor, style: cs.borderRightStyle },
      top: { width: parseFloat(cs.borderTopWidth) || 0, color: cs.borderTopColor, style: cs.borderTopStyle },
      bottom: { width: parseFloat(cs.borderBottomWidth) || 0, color: cs.borderBottomColor, style: cs.borderBottomStyle }
    };
  }

  function hasAnyBorder(b) {
    return b.left.width > 0 || b.right.width > 0 || b.top.width > 0 || b.bottom.width > 0;
  }

  function isUniformBorder(b) {
    if (!hasAnyBorder(b)) return true;
    const present = [b.left, b.right, b.top, b.bottom].filter(s => s.width > 0);
    const w0 = present[0].width, c0 = present[0].color;
    return present.every(s => s.width === w0 && s.color === c0) &&
      (b.left.width === 0 || b.left.width === w0) &&
      (b.right.width === 0 || b.right.width === w0) &&
      (b.top.width === 0 || b.top.width === w0) &&
      (b.bottom.width === 0 || b.bottom.width === w0);
  }

  function hasVisibleBackground(cs) {
    const bg = cs.backgroundColor;
    return bg && bg !== "transparent" && bg !== "rgba(0, 0, 0, 0)";
  }

  function hasBackgroundImage(cs) {
    return cs.backgroundImage && cs.backgroundImage !== "none";
  }

  function hasShadow(cs) {
    return cs.boxShadow && cs.boxShadow !== "none";
  }

  // --- inline run flattener (§4.2, §9) -------------------------------

  function newRun() {
    return { text: "", bold: null, italic: null, underline: null, color: null, fontSize: null, transform: "none", bullet: null, breakLine: false };
  }

  function cloneFrame(frame) {
    return Object.assign({}, frame);
  }

  function applyTransform(transform, text) {
    switch (transform) {
      case "uppercase": return text.toUpperCase();
      case "lowercase": return text.toLowerCase();
      case "capitalize": return text.replace(/\b\w/g, c => c.toUpperCase());
      default: return text;
    }
  }

  function flatten(el, frame, runs, blockAware) {
    let lastWasTextLike = false;
    for (const node of Array.from(el.childNodes)) {
      if (node.nodeType === Node.TEXT_NODE) {
        const collapsed = node.textContent.replace(/\s+/g, " ");
        if (collapsed === "") continue;
        const text = applyTransform(frame.transform, collapsed);
        if (lastWasTextLike && runs.length > 0 && runsCompatible(runs[runs.length - 1], frame)) {
          runs[runs.length - 1].text += text;
        } else {
          const r = cloneFrame(frame);
          r.text = text;
          r.breakLine = false;
          runs.push(r);
        }
        lastWasTextLike = true;
        continue;
      }
      if (node.nodeType !== Node.ELEMENT_NODE) continue;
      nodeCount++;
      const tag = node.tagName.toLowerCase();
      if (tag === "br") {
        if (runs.length > 0) runs[runs.length - 1].breakLine = true;
        lastWasTextLike = true;
        continue;
      }
      if (INLINE_TAGS.includes(tag)) {
        const cs = getComputedStyle(node);
        const childFrame = cloneFrame(frame);
        const weight = parseInt(cs.fontWeight, 10) || 400;
        if (weight >= 600) childFrame.bold = true;
        if (cs.fontStyle === "italic" || cs.fontStyle === "oblique") childFrame.italic = true;
        if (cs.textDecorationLine && cs.textDecorationLine.includes("underline")) childFrame.underline = true;
        if (cs.color && cs.color !== "rgb(0, 0, 0)") childFrame.color = cs.color;
        if (cs.fontSize) childFrame.fontSize = parseFloat(cs.fontSize);
        if (cs.textTransform && cs.textTransform !== "none") childFrame.transform = cs.textTransform;
        if (tag === "span" || tag === "a") {
          const mLeft = parseFloat(cs.marginLeft) || 0;
          const mRight = parseFloat(cs.marginRight) || 0;
          if (mLeft !== 0 || mRight !== 0) {
            addError("inlineMargin", "inline element <" + tag + "> has a non-zero horizontal margin");
          }
        }
        flatten(node, childFrame, runs, blockAware);
        lastWasTextLike = true;
        continue;
      }
      const display = getComputedStyle(node).display;
      if (isLayoutDisplay(display)) {
        lastWasTextLike = false;
        continue;
      }
      if (blockAware) {
        const before = runs.length;
        const childFrame = cloneFrame(frame);
        flatten(node, childFrame, runs, blockAware);
        const producedRuns = runs.length > before;
        const hasFollowing = node.nextElementSibling != null || (node.nextSibling && node.nextSibling.textContent && node.nextSibling.textContent.trim() !== "");
        if (producedRuns && hasFollowing && runs.length > 0) {
          runs[runs.length - 1].breakLine = true;
        }
      }
      lastWasTextLike = false;
    }
  }

  function runsCompatible(run, frame) {
    return run.bold === frame.bold && run.italic === frame.italic && run.underline === frame.underline &&
      run.color === frame.color && run.fontSize === frame.fontSize;
  }

  function flattenToRuns(el, blockAware) {
    const runs = [];
    flatten(el, newRun(), runs, blockAware);
    return runs;
  }

  function containsInlineFormatting(el) {
    for (const child of Array.from(el.querySelectorAll("*"))) {
      const tag = child.tagName.toLowerCase();
      if (INLINE_TAGS.includes(tag) && tag !== "br") return true;
    }
    return false;
  }

  // --- element records ------------------------------------------------

  function textStyleOf(el, cs) {
    let align = cs.textAlign;
    if (align === "start") align = "left";
    if (align === "end") align = "right";
    return {
      fontSize: parseFloat(cs.fontSize),
      fontFamily: cs.fontFamily,
      color: cs.color,
      align: align,
      lineHeight: cs.lineHeight,
      marginTop: parseFloat(cs.marginTop) || 0,
      marginBottom: parseFloat(cs.marginBottom) || 0,
      paddingLeft: parseFloat(cs.paddingLeft) || 0,
      paddingRight: parseFloat(cs.paddingRight) || 0,
      paddingBottom: parseFloat(cs.paddingBottom) || 0,
      paddingTop: parseFloat(cs.paddingTop) || 0,
      transform: cs.transform,
      writingMode: cs.writingMode,
      weight: parseInt(cs.fontWeight, 10) || 400,
      fontStyle: cs.fontStyle,
      textDecoration: cs.textDecorationLine
    };
  }

  function emitTextElement(el, tag, elements) {
    const cs = getComputedStyle(el);
    const text = trimmedText(el);
    if (text === "") return;
    if (tag !== "li" && startsWithManualBullet(text)) {
      addError("manualBullet", "text starts with a manual bullet glyph: " + text.slice(0, 1));
      processed.add(el);
      return;
    }
    const rect = rectOf(el);
    const style = textStyleOf(el, cs);
    const record = { kind: "text", tag: tag, rect: rect, style: style };
    if (containsInlineFormatting(el)) {
      record.runs = flattenToRuns(el, true);
    } else {
      record.plainText = applyTransform(cs.textTransform, text);
      record.bold = style.weight >= 600;
      record.italic = style.fontStyle === "italic" || style.fontStyle === "oblique";
      record.underline = style.textDecoration.includes("underline");
    }
    elements.push(record);
    processed.add(el);
  }

  function emitShapeAndContainer(el, elements) {
    const cs = getComputedStyle(el);
    const rect = rectOf(el);
    if (!hasPositiveRect(rect)) { processed.add(el); return; }
    const bg = hasVisibleBackground(cs);
    const bgImg = hasBackgroundImage(cs);
    const borders = borderSides(cs);
    const uniform = isUniformBorder(borders);
    const shadow = cs.boxShadow !== "none" ? cs.boxShadow : null;

    if (bg || (uniform && hasAnyBorder(borders) && !bgImg)) {
      elements.push({
        kind: "shape", rect: rect,
        fill: bg ? cs.backgroundColor : null,
        borderColor: uniform && hasAnyBorder(borders) ? borders.left.color || borders.top.color : null,
        borderWidth: uniform && hasAnyBorder(borders) ? Math.max(borders.left.width, borders.right.width, borders.top.width, borders.bottom.width) : 0,
        borderRadius: cs.borderTopLeftRadius,
        shadow: shadow
      });
    }
    if (bgImg) {
      elements.push({
        kind: "bgImage", rect: rect,
        backgroundImage: cs.backgroundImage, backgroundRepeat: cs.backgroundRepeat,
        backgroundSize: cs.backgroundSize, backgroundPosition: cs.backgroundPosition,
        backgroundColor: cs.backgroundColor
      });
    }
    if (bgImg || !uniform) {
      for (const side of ["left", "right", "top", "bottom"]) {
        const s = borders[side];
        if (s.width <= 0) continue;
        elements.push({ kind: "line", rect: rect, side: side, widthPx: s.width, color: s.color });
      }
    }
    processed.add(el);

    const children = Array.from(el.children);
    const allInline = children.length > 0 && children.every(c => INLINE_TAGS.includes(c.tagName.toLowerCase()));
    const text = trimmedText(el);
    if (allInline && text !== "") {
      emitTextElement(el, "div", elements);
    }
  }

  function emitList(el, elements) {
    const items = Array.from(el.children).filter(c => c.tagName.toLowerCase() === "li");
    const cs = getComputedStyle(el);
    const listStyleType = cs.listStyleType;
    const bulletsEnabled = listStyleType !== "none";
    const padLeft = parseFloat(cs.paddingLeft) || 0;
    const markerMargin = bulletsEnabled ? padLeft / 2 : 0;
    const textIndent = bulletsEnabled ? padLeft / 2 : padLeft;

    const allRuns = [];
    items.forEach((li, idx) => {
      const liRuns = flattenToRuns(li, true);
      if (liRuns.length > 0 && startsWithManualBullet(liRuns[0].text)) {
        for (const g of BULLET_GLYPHS) {
          if (liRuns[0].text.startsWith(g)) {
            liRuns[0].text = liRuns[0].text.slice(g.length).replace(/^\s+/, "");
            break;
          }
        }
      }
      if (liRuns.length > 0 && bulletsEnabled) {
        liRuns[0].bullet = { indent: textIndent };
      }
      if (liRuns.length > 0 && idx < items.length - 1) {
        liRuns[liRuns.length - 1].breakLine = true;
      }
      allRuns.push(...liRuns);
      markProcessed(li);
    });

    const firstLi = items[0];
    const fcs = firstLi ? getComputedStyle(firstLi) : cs;
    elements.push({
      kind: "list", rect: rectOf(el), runs: allRuns,
      listStyle: {
        fontSize: parseFloat(fcs.fontSize), fontFamily: fcs.fontFamily, color: fcs.color,
        align: fcs.textAlign, lineHeight: fcs.lineHeight, markerMargin: markerMargin
      }
    });
    markProcessed(el);
  }

  function emitTable(el, elements) {
    const rows = Array.from(el.querySelectorAll("tr"));
    if (rows.length === 0) {
      addError("emptyTable", "table has no rows");
      markProcessed(el);
      return;
    }
    const rect = rectOf(el);
    const rawRows = [];
    let firstRowWidths = null;
    rows.forEach((tr, rowIdx) => {
      const cells = Array.from(tr.children).filter(c => ["td", "th"].includes(c.tagName.toLowerCase()));
      const rowOut = [];
      if (rowIdx === 0) firstRowWidths = [];
      cells.forEach(cell => {
        const ccs = getComputedStyle(cell);
        const crect = rectOf(cell);
        const colspan = parseInt(cell.getAttribute("colspan") || "1", 10);
        const rowspan = parseInt(cell.getAttribute("rowspan") || "1", 10);
        if (rowIdx === 0) {
          const per = crect.width / colspan;
          for (let i = 0; i < colspan; i++) firstRowWidths.push(per);
        }
        const borders = borderSides(ccs);
        const hasInline = containsInlineFormatting(cell);
        const cellOut = {
          plainText: hasInline ? null : trimmedText(cell),
          runs: hasInline ? flattenToRuns(cell, true) : null,
          fontSize: parseFloat(ccs.fontSize), fontFamily: ccs.fontFamily, color: ccs.color,
          bold: (parseInt(ccs.fontWeight, 10) || 400) >= 600,
          italic: ccs.fontStyle === "italic",
          underline: ccs.textDecorationLine.includes("underline"),
          align: ccs.textAlign, valign: ccs.verticalAlign,
          lineHeight: ccs.lineHeight,
          paddingLeft: parseFloat(ccs.paddingLeft) || 0, paddingRight: parseFloat(ccs.paddingRight) || 0,
          paddingTop: parseFloat(ccs.paddingTop) || 0, paddingBottom: parseFloat(ccs.paddingBottom) || 0,
          fill: hasVisibleBackground(ccs) ? ccs.backgroundColor : null,
          border: borders,
          colspan: colspan, rowspan: rowspan
        };
        rowOut.push(cellOut);
        markProcessed(cell);
      });
      rawRows.push({ height: rectOf(tr).height, cells: rowOut });
      markProcessed(tr);
    });
    elements.push({ kind: "table", rect: rect, rows: rawRows, firstRowColWidths: firstRowWidths || [] });
    markProcessed(el);
  }

  function walk(el) {
    if (processed.has(el)) return;
    nodeCount++;

    if (pseudoHasContent(el, "::before") || pseudoHasContent(el, "::after")) {
      addError("pseudoElement", "element has pseudo-element content: <" + el.tagName.toLowerCase() + ">");
      processed.add(el);
      return;
    }

    const tag = el.tagName.toLowerCase();
    const textTag = ["p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "li"].includes(tag);
    if (textTag) {
      const cs = getComputedStyle(el);
      if (hasVisibleBackground(cs) || hasBackgroundImage(cs) || hasAnyBorder(borderSides(cs)) || hasShadow(cs)) {
        addError("forbiddenStyling", "text tag <" + tag + "> has background/border/shadow styling");
        processed.add(el);
        return;
      }
    }

    if (tag !== "table" && el.classList.contains("placeholder")) {
      const rect = rectOf(el);
      if (!hasPositiveRect(rect)) {
        addError("emptyPlaceholder", "placeholder #" + el.id + " has zero width or height");
      } else {
        window.__placeholders.push({ id: el.id, rect: rect });
      }
      markProcessed(el);
      return;
    }

    if (tag === "img") {
      const rect = rectOf(el);
      if (hasPositiveRect(rect)) {
        const cs = getComputedStyle(el);
        window.__elements.push({
          kind: "image", rect: rect, src: el.getAttribute("src") || "",
          objectFit: cs.objectFit, objectPosition: cs.objectPosition, borderRadius: cs.borderTopLeftRadius
        });
        processed.add(el);
        return;
      }
    }

    if (tag === "svg") {
      window.__elements.push({ kind: "svg", rect: rectOf(el), markup: el.outerHTML });
      markProcessed(el);
      return;
    }

    if (tag === "table") {
      emitTable(el, window.__elements);
      return;
    }

    if (tag === "div") {
      const cs = getComputedStyle(el);
      const display = cs.display;
      const directText = Array.from(el.childNodes).some(n => n.nodeType === Node.TEXT_NODE && n.textContent.trim() !== "");
      if (directText) {
        addError("unwrappedText", "<div> contains a raw text node not wrapped in a text tag");
      }
      const children = Array.from(el.children);
      const allInlineWhitelist = children.length > 0 && children.every(c => INLINE_TAGS.includes(c.tagName.toLowerCase()));
      const hasText = trimmedText(el) !== "";
      const styled = hasVisibleBackground(cs) || hasBackgroundImage(cs) || hasAnyBorder(borderSides(cs)) || hasShadow(cs);

      if (!styled && !isLayoutDisplay(display) && allInlineWhitelist && hasText) {
        emitTextElement(el, "div", window.__elements);
        markProcessed(el);
        return;
      }
      if (styled) {
        emitShapeAndContainer(el, window.__elements);
        return;
      }
      // ignored container; descendants considered independently
      processed.add(el);
      return;
    }

    if (tag === "ul" || tag === "ol") {
      const cs = getComputedStyle(el);
      if (!isLayoutDisplay(cs.display)) {
        emitList(el, window.__elements);
        return;
      }
    }

    if (["p", "h1", "h2", "h3", "h4", "h5", "h6"].includes(tag)) {
      emitTextElement(el, tag, window.__elements);
      return;
    }

    if (tag === "span") {
      const parentDisplay = el.parentElement ? getComputedStyle(el.parentElement).display : "";
      if (isLayoutDisplay(parentDisplay) && !el.closest("p, h1, h2, h3, h4, h5, h6, ul, ol, li")) {
        // a span laid out directly by a flex/grid parent and not inside
        // any text tag (whose own text already covers it) - treat it as
        // its own text block rather than dropping it.
        emitTextElement(el, "span", window.__elements);
        return;
      }
    }

    processed.add(el);
  }

  window.__elements = [];
  window.__placeholders = [];

  function visitAll(el) {
    if (processed.has(el)) return;
    walk(el);
    for (const child of Array.from(el.children)) {
      visitAll(child);
    }
  }

  visitAll(document.body);

  const bodyCS = getComputedStyle(document.body);
  let background;
  if (hasBackgroundImage(bodyCS)) {
    background = {
      kind: "css",
      backgroundImage: bodyCS.backgroundImage, backgroundRepeat: bodyCS.backgroundRepeat,
      backgroundSize: bodyCS.backgroundSize, backgroundPosition: bodyCS.backgroundPosition,
      backgroundColor: bodyCS.backgroundColor
    };
  } else {
    background = { kind: "color", color: bodyCS.backgroundColor };
  }

  return {
    viewport: {
      width: document.body.clientWidth, height: document.body.clientHeight,
      scrollWidth: document.body.scrollWidth, scrollHeight: document.body.scrollHeight
    },
    background: background,
    placeholders: window.__placeholders,
    elements: window.__elements,
    nodeCount: nodeCount,
    claimedCount: claimedCount,
    errors: errors
  };
})()`
